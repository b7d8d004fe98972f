package gemini

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/adelorme/cvmatch/internal/embedding"
)

const defaultModel = "gemini-embedding-001"

// contentEmbedder is the slice of the genai Models API the client uses.
// Tests substitute a stub here.
type contentEmbedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Client embeds texts through the Gemini embedding API. All texts of one
// call are sent as a single batch, and the returned vectors are normalized
// to unit length.
type Client struct {
	embedder  contentEmbedder
	modelName string
	dimension int
	logger    *zap.Logger
}

// New creates a Client for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, dimension int, logger *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{
		embedder:  client.Models,
		modelName: model,
		dimension: dimension,
		logger:    logger,
	}, nil
}

func (c *Client) Name() string { return "gemini" }

// Model returns the configured embedding model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

// Embed requests one vector per text in a single batched call. Transport
// failures are wrapped in embedding.ErrUnavailable so the retry layer can
// distinguish them from bad input.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if c == nil || c.embedder == nil {
		return nil, errors.New("gemini client is not initialized")
	}
	if len(texts) == 0 {
		return nil, errors.New("no texts to embed")
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, errors.New("text to embed must not be empty")
		}
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}

	var cfg *genai.EmbedContentConfig
	if c.dimension > 0 {
		cfg = &genai.EmbedContentConfig{OutputDimensionality: genai.Ptr(int32(c.dimension))}
	}

	resp, err := c.embedder.EmbedContent(ctx, c.modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: embed content: %v", embedding.ErrUnavailable, err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", embedding.ErrUnavailable, len(texts), respLen(resp))
	}

	vectors := make([][]float64, 0, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("%w: empty embedding at index %d", embedding.ErrUnavailable, i)
		}
		vectors = append(vectors, unitVector(emb.Values))
	}

	c.logger.Debug("texts embedded",
		zap.String("model", c.modelName),
		zap.Int("count", len(vectors)),
		zap.Int("dimension", len(vectors[0])),
	)

	return vectors, nil
}

func respLen(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}

// unitVector converts the raw values to float64 and scales them to unit
// length. A zero vector is returned unchanged.
func unitVector(values []float32) []float64 {
	vec := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		vec[i] = float64(v)
		sum += vec[i] * vec[i]
	}

	if sum == 0 {
		return vec
	}

	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
