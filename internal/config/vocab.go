package config

// Reference vocabularies for the banking and finance sector. Entries are
// matched after normalization, so accents and casing do not matter here.

func defaultSkills() []SkillEntry {
	return []SkillEntry{
		// Programming languages
		{Name: "python"},
		{Name: "java"},
		{Name: "scala"},
		{Name: "r"},
		{Name: "sql"},
		{Name: "c++"},
		{Name: "javascript", Synonyms: []string{"js"}},
		{Name: "typescript", Synonyms: []string{"ts"}},
		{Name: "c#"},
		{Name: ".net", Synonyms: []string{"dotnet"}},
		{Name: "go", Synonyms: []string{"golang"}},
		{Name: "kotlin"},
		{Name: "swift"},

		// Data science and AI
		{Name: "machine learning", Synonyms: []string{"apprentissage automatique", "ml"}},
		{Name: "deep learning", Synonyms: []string{"apprentissage profond"}},
		{Name: "nlp", Synonyms: []string{"traitement du langage naturel"}},
		{Name: "data science"},
		{Name: "big data"},
		{Name: "pandas"},
		{Name: "numpy"},
		{Name: "scikit-learn", Synonyms: []string{"sklearn"}},
		{Name: "tensorflow"},
		{Name: "pytorch"},
		{Name: "keras"},
		{Name: "spark"},
		{Name: "hadoop"},
		{Name: "airflow"},
		{Name: "mlflow"},

		// Finance and risk
		{Name: "gestion des risques", Synonyms: []string{"risk management"}},
		{Name: "bale iii", Synonyms: []string{"basel iii"}},
		{Name: "bale iv", Synonyms: []string{"basel iv"}},
		{Name: "solvabilite", Synonyms: []string{"solvency"}},
		{Name: "value at risk", Synonyms: []string{"var"}},
		{Name: "stress testing"},
		{Name: "backtesting"},
		{Name: "credit scoring"},
		{Name: "kyc", Synonyms: []string{"know your customer"}},
		{Name: "lutte anti-blanchiment", Synonyms: []string{"aml", "anti-money laundering"}},
		{Name: "compliance", Synonyms: []string{"conformite"}},
		{Name: "reglementation"},
		{Name: "mifid"},
		{Name: "ifrs"},
		{Name: "sox"},
		{Name: "rgpd", Synonyms: []string{"gdpr"}},

		// Infrastructure and platforms
		{Name: "cloud"},
		{Name: "aws", Synonyms: []string{"amazon web services"}},
		{Name: "azure"},
		{Name: "gcp", Synonyms: []string{"google cloud"}},
		{Name: "docker"},
		{Name: "kubernetes", Synonyms: []string{"k8s"}},
		{Name: "jenkins"},
		{Name: "gitlab"},
		{Name: "ci/cd"},
		{Name: "microservices"},
		{Name: "api rest", Synonyms: []string{"rest api"}},
		{Name: "graphql"},
		{Name: "kafka"},
		{Name: "rabbitmq"},
		{Name: "elasticsearch"},
		{Name: "mongodb"},
		{Name: "postgresql", Synonyms: []string{"postgres"}},
		{Name: "oracle"},
		{Name: "cassandra"},
		{Name: "redis"},

		// Methods
		{Name: "agile"},
		{Name: "scrum"},
		{Name: "devops"},
		{Name: "safe"},
		{Name: "kanban"},
		{Name: "lean"},

		// Security
		{Name: "cybersecurite", Synonyms: []string{"securite informatique", "cybersecurity"}},
		{Name: "pki"},
		{Name: "cryptographie", Synonyms: []string{"cryptography"}},
		{Name: "authentification"},
		{Name: "oauth"},
		{Name: "saml"},
		{Name: "pentest"},

		// Business intelligence
		{Name: "power bi"},
		{Name: "tableau"},
		{Name: "qlik"},
		{Name: "sas"},
		{Name: "alteryx"},
		{Name: "talend"},

		// Core banking
		{Name: "sepa"},
		{Name: "t2s"},
		{Name: "paiements", Synonyms: []string{"payments"}},
		{Name: "clearing"},
		{Name: "settlement"},
		{Name: "core banking"},
		{Name: "temenos"},
		{Name: "finastra"},
	}
}

func defaultSoftSkills() []string {
	return []string{
		"leadership", "communication", "travail d'equipe", "collaboration",
		"autonomie", "rigueur", "esprit d'analyse",
		"resolution de problemes", "creativite", "innovation",
		"adaptabilite", "gestion du stress", "organisation",
		"sens du service", "orientation client", "pedagogie",
		"negociation", "persuasion", "esprit critique",
		"proactivite", "resilience", "ethique", "integrite",
	}
}

func defaultLanguages() []string {
	return []string{
		"francais", "anglais", "allemand", "espagnol", "italien",
		"portugais", "neerlandais",
		"chinois", "japonais", "coreen", "arabe", "russe",
		"hindi", "bengali", "thai", "vietnamien",
	}
}

func defaultDegrees() []DegreeEntry {
	return []DegreeEntry{
		{Keyword: "bac", Level: 1},

		{Keyword: "bac+2", Level: 2},
		{Keyword: "bts", Level: 2},
		{Keyword: "dut", Level: 2},
		{Keyword: "deug", Level: 2},
		{Keyword: "deust", Level: 2},

		{Keyword: "bac+3", Level: 3},
		{Keyword: "licence", Level: 3},
		{Keyword: "bachelor", Level: 3},
		{Keyword: "bsc", Level: 3},

		{Keyword: "bac+4", Level: 4},
		{Keyword: "bac+5", Level: 4},
		{Keyword: "master", Level: 4},
		{Keyword: "mastere", Level: 4},
		{Keyword: "mba", Level: 4},
		{Keyword: "msc", Level: 4},
		{Keyword: "ingenieur", Level: 4},

		{Keyword: "doctorat", Level: 5},
		{Keyword: "phd", Level: 5},
		{Keyword: "doctorate", Level: 5},
	}
}

func defaultCertifications() []Certification {
	return []Certification{
		{Name: "pmp", Domain: "gestion de projet"},
		{Name: "prince2", Domain: "gestion de projet"},
		{Name: "capm", Domain: "gestion de projet"},
		{Name: "psm", Domain: "gestion de projet"},
		{Name: "scrum master", Domain: "gestion de projet"},
		{Name: "itil", Domain: "gestion de projet"},

		{Name: "cfa", Domain: "finance"},
		{Name: "frm", Domain: "finance"},
		{Name: "amf", Domain: "finance"},
		{Name: "cpa", Domain: "finance"},

		{Name: "aws certified", Domain: "cloud"},
		{Name: "azure certified", Domain: "cloud"},
		{Name: "gcp certified", Domain: "cloud"},

		{Name: "cissp", Domain: "securite"},
		{Name: "ceh", Domain: "securite"},
		{Name: "iso 27001", Domain: "securite"},
		{Name: "comptia security+", Domain: "securite"},
	}
}
