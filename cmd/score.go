package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/adelorme/cvmatch/internal/analyze"
	"github.com/adelorme/cvmatch/internal/config"
	"github.com/adelorme/cvmatch/internal/embedding"
	"github.com/adelorme/cvmatch/internal/embedding/gemini"
	"github.com/adelorme/cvmatch/internal/logger"
	"github.com/adelorme/cvmatch/internal/match"
	"github.com/adelorme/cvmatch/internal/report"
	"github.com/adelorme/cvmatch/internal/secrets"
)

const (
	PromptShowReport = "Show the full report"
	PromptDumpJSON   = "Dump the result to a JSON file"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptDumpJSON, PromptExit},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "path to the resume text file")
	scoreCmd.Flags().StringP("posting", "p", "", "path to the job posting text file")
	scoreCmd.Flags().StringP("out", "o", "", "write the result as JSON to this file")
	scoreCmd.Flags().BoolP("auto", "y", false, "print the report and exit without prompting")
	scoreCmd.Flags().Duration("timeout", time.Minute, "overall deadline for the analysis")

	scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagRequired("posting")

	viper.BindPFlag("out", scoreCmd.Flags().Lookup("out"))
}

// score is the main command for the cli.
func score(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cfg, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting cvmatch", zap.String("version", version))

	resumeText, err := readInput(cmd, "resume")
	if err != nil {
		logger.Fatal("reading the resume", zap.Error(err))
	}

	postingText, err := readInput(cmd, "posting")
	if err != nil {
		logger.Fatal("reading the posting", zap.Error(err))
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err := newProvider(ctx, cfg.Embedding, logger)
	if err != nil {
		logger.Fatal(
			"building the embedding provider",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE or the 'embedding.api-key-file' key in the configuration file"),
		)
	}

	engine := match.NewEngine(cfg, analyze.NewAnalyzer(cfg, logger), provider, logger)

	result, err := engine.Score(ctx, resumeText, postingText)
	if err != nil {
		logger.Fatal("scoring failed", zap.Error(err))
	}

	rep := report.NewGenerator(logger).Generate(result)

	fmt.Println(rep.Summary)

	if auto, _ := cmd.Flags().GetBool("auto"); auto {
		fmt.Println(rep.Text())
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, rep, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, rep *report.Report, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Println(rep.Text())
		return nil
	case PromptDumpJSON:
		filename, err := dumpJSON(rep)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// newProvider builds the configured embedding provider wrapped with the
// retry policy.
func newProvider(ctx context.Context, cfg *config.Embedding, logger *zap.Logger) (embedding.Provider, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}

	apiKeyFile := strings.TrimSpace(cfg.APIKeyFile)
	if apiKeyFile == "" {
		apiKeyFile = strings.TrimSpace(viper.GetString("embedding.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: apiKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, err
	}

	client, err := gemini.New(ctx, apiKey, cfg.Model, cfg.Dimension, logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Model),
	))
	if err != nil {
		return nil, err
	}

	return embedding.WithRetry(client, cfg.MaxRetries, cfg.Backoff, logger), nil
}

func readInput(cmd *cobra.Command, flag string) (string, error) {
	path, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func dumpJSON(rep *report.Report) (string, error) {
	raw, err := rep.JSON()
	if err != nil {
		return "", err
	}

	if out := strings.TrimSpace(viper.GetString("out")); out != "" {
		return out, os.WriteFile(out, append(raw, '\n'), 0o600)
	}

	file, err := os.CreateTemp("", app+"-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(append(raw, '\n')); err != nil {
		return "", err
	}

	return file.Name(), nil
}
