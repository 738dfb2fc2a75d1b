package vocab

import "regexp"

// Default builds the production vocabulary. The catalog is compiled once and
// must not be mutated afterwards.
func Default() *Vocabulary {
	return &Vocabulary{
		Technical: []Category{
			{
				Name:    "languages",
				Pattern: regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|TypeScript|C\+\+|C#|Ruby|PHP|Go|Swift|Kotlin|Dart)\b`),
				Casing: map[string]string{
					"javascript": "JavaScript",
					"typescript": "TypeScript",
					"python":     "Python",
					"java":       "Java",
					"ruby":       "Ruby",
					"php":        "PHP",
					"go":         "Go",
					"swift":      "Swift",
					"kotlin":     "Kotlin",
					"dart":       "Dart",
					"c++":        "C++",
					"c#":         "C#",
				},
			},
			{
				Name:    "frameworks",
				Pattern: regexp.MustCompile(`(?i)\b(?:React(?:\.js)?|Angular|Vue|Flutter|Django|Flask|Spring|Express|TensorFlow|PyTorch|Node\.js)\b`),
				Casing: map[string]string{
					"react":      "React",
					"react.js":   "React",
					"angular":    "Angular",
					"vue":        "Vue",
					"flutter":    "Flutter",
					"django":     "Django",
					"flask":      "Flask",
					"spring":     "Spring",
					"express":    "Express",
					"tensorflow": "TensorFlow",
					"pytorch":    "PyTorch",
					"node.js":    "Node.js",
				},
			},
			{
				Name:    "databases",
				Pattern: regexp.MustCompile(`(?i)\b(?:SQL|MySQL|PostgreSQL|MongoDB|Oracle|SQLite|Redis|Cassandra|DynamoDB|Firebase|Firestore)\b`),
				Casing: map[string]string{
					"sql":        "SQL",
					"mysql":      "MySQL",
					"postgresql": "PostgreSQL",
					"mongodb":    "MongoDB",
					"oracle":     "Oracle",
					"sqlite":     "SQLite",
					"redis":      "Redis",
					"cassandra":  "Cassandra",
					"dynamodb":   "DynamoDB",
					"firebase":   "Firebase",
					"firestore":  "Firestore",
				},
			},
			{
				Name:    "cloud",
				Pattern: regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Docker|Kubernetes|CI/CD|Jenkins|Git|GitHub|GitLab|Vercel|Netlify|Heroku)\b`),
				Casing: map[string]string{
					"aws":        "AWS",
					"azure":      "Azure",
					"gcp":        "GCP",
					"docker":     "Docker",
					"kubernetes": "Kubernetes",
					"ci/cd":      "CI/CD",
					"jenkins":    "Jenkins",
					"git":        "Git",
					"github":     "GitHub",
					"gitlab":     "GitLab",
					"vercel":     "Vercel",
					"netlify":    "Netlify",
					"heroku":     "Heroku",
				},
			},
			{
				Name:    "web",
				Pattern: regexp.MustCompile(`(?i)\b(?:HTML5?|CSS3?|SASS|LESS|Bootstrap|Tailwind|REST|GraphQL|API|Redux|Next\.js|Vite)\b`),
				Casing: map[string]string{
					"html":      "HTML",
					"html5":     "HTML5",
					"css":       "CSS",
					"css3":      "CSS3",
					"sass":      "SASS",
					"less":      "LESS",
					"bootstrap": "Bootstrap",
					"tailwind":  "Tailwind",
					"rest":      "REST",
					"graphql":   "GraphQL",
					"api":       "API",
					"redux":     "Redux",
					"next.js":   "Next.js",
					"vite":      "Vite",
				},
			},
			{
				Name:    "mobile",
				Pattern: regexp.MustCompile(`(?i)\b(?:React\s+Native|Ionic|Android|iOS|Xcode|Android\s+Studio)\b`),
				Casing: map[string]string{
					"react native":   "React Native",
					"ionic":          "Ionic",
					"android":        "Android",
					"ios":            "iOS",
					"xcode":          "Xcode",
					"android studio": "Android Studio",
				},
			},
			{
				Name:    "design",
				Pattern: regexp.MustCompile(`(?i)\b(?:Figma|Adobe\s+XD|Sketch|InVision|Photoshop|Illustrator|UI|UX)\b`),
				Casing: map[string]string{
					"figma":       "Figma",
					"adobe xd":    "Adobe XD",
					"sketch":      "Sketch",
					"invision":    "InVision",
					"photoshop":   "Photoshop",
					"illustrator": "Illustrator",
					"ui":          "UI",
					"ux":          "UX",
				},
			},
			{
				Name:    "ai",
				Pattern: regexp.MustCompile(`(?i)\b(?:Machine\s+Learning|Artificial\s+Intelligence|NLP|Neural\s+Networks|Deep\s+Learning)\b`),
				Casing: map[string]string{
					"machine learning":        "Machine Learning",
					"artificial intelligence": "Artificial Intelligence",
					"nlp":                     "NLP",
					"neural networks":         "Neural Networks",
					"deep learning":           "Deep Learning",
				},
			},
			{
				Name:    "methodology",
				Pattern: regexp.MustCompile(`(?i)\b(?:Agile|Scrum|Kanban)\b`),
				Casing: map[string]string{
					"agile":  "Agile",
					"scrum":  "Scrum",
					"kanban": "Kanban",
				},
			},
		},

		SoftSkills: []string{
			"communication", "teamwork", "leadership", "problem solving",
			"critical thinking", "time management", "adaptability",
			"flexibility", "creativity", "collaboration", "interpersonal",
			"organization", "detail oriented", "work ethic", "self motivated",
			"proactive", "decision making", "conflict resolution",
			"customer service",
		},

		EducationKeywords: []string{
			"bachelor", "master", "phd", "doctorate", "degree", "bs", "ms",
			"ba", "ma", "computer science", "engineering",
			"information technology", "software engineering",
		},

		EducationLevels: map[string]int{
			"phd":              100,
			"doctorate":        100,
			"master":           90,
			"mba":              90,
			"bachelor":         80,
			"bs":               80,
			"ba":               80,
			"bsc":              80,
			"undergraduate":    60,
			"associate":        60,
			"certificate":      40,
			"certification":    40,
			"diploma":          40,
			"high school":      20,
			"secondary school": 20,
		},

		EducationEvidence: []string{
			"degree", "bachelor", "master", "phd", "university", "college",
			"school", "gpa", "academic", "graduated", "study", "studies",
			"education", "major",
		},

		Seniority: []string{"Junior", "Senior", "Lead", "Manager", "Director", "Intern"},

		CriticalSkills: map[string]bool{
			"flutter":    true,
			"firebase":   true,
			"postgresql": true,
			"react":      true,
			"typescript": true,
		},

		ImportantSkills: []string{
			"flutter", "dart", "firebase", "postgresql", "react", "typescript",
			"python", "java", "javascript", "sql", "aws", "azure", "git",
			"docker", "kubernetes", "agile", "scrum", "leadership",
			"communication", "teamwork", "problem solving", "analytics",
		},

		AchievementPatterns: []*regexp.Regexp{
			// Professional achievements with metrics
			regexp.MustCompile(`(?i)increased\s+(?:revenue|sales|profit|growth)\s+by\s+(\d+)%`),
			regexp.MustCompile(`(?i)reduced\s+(?:costs|expenses|time|errors)\s+by\s+(\d+)%`),
			regexp.MustCompile(`(?i)improved\s+(?:efficiency|performance|productivity)\s+by\s+(\d+)%`),
			regexp.MustCompile(`(?i)(?:increased|improved|reduced|grew|boosted)\s+\w+\s+by\s+(\d+)%`),
			regexp.MustCompile(`(?i)\bby\s+(\d+)%`),
			regexp.MustCompile(`(?i)(?:founded|established|started)\s+(?:a|an|the)`),
			regexp.MustCompile(`(?i)(?:managed|led|supervised)\s+(?:a\s+)?team\s+of\s+(\d+)`),
			regexp.MustCompile(`(?i)(?:completed|delivered|launched)\s+(\d+)\s+projects`),
			regexp.MustCompile(`(?i)(?:achieved|exceeded|surpassed)\s+(?:targets|goals|quotas)\s+by\s+(\d+)%`),
			regexp.MustCompile(`(?i)(?:saved|generated)\s+\$(\d+)`),

			// Academic achievements
			regexp.MustCompile(`(?i)(?:won|awarded|received)\s+(?:\d+)?\s*(?:award|honor|recognition|scholarship|prize|medal)`),
			regexp.MustCompile(`(?i)(?:served|volunteered)\s+(?:for|as)\s+(\d+)\s+(?:year|month|week|day)`),
			regexp.MustCompile(`(?i)(?:GPA|grade|score)\s+of\s+(\d+)\.?\d*`),
			regexp.MustCompile(`(?i)(?:ranked|placed)\s+(?:#|number|no\.?|top)\s*(\d+)`),
			regexp.MustCompile(`(?i)(?:elected|selected|chosen)\s+(?:as|to|for)\s+(?:president|chair|leader|representative)`),
			regexp.MustCompile(`(?i)(?:first|second|third|top)\s+place\s+(?:in|at|for)`),
			regexp.MustCompile(`(?i)(?:scholarship|fellowship|grant)\s+(?:recipient|awardee|winner)`),
			regexp.MustCompile(`(?i)(?:published|presented|authored)\s+(?:paper|article|research|thesis)`),

			// Competition achievements
			regexp.MustCompile(`(?i)(?:winner|finalist|runner-up|champion)\s+(?:of|in|at)`),
			regexp.MustCompile(`(?i)(?:competed|participated|represented)\s+(?:in|at)\s+(?:national|international|regional|global)`),
			regexp.MustCompile(`(?i)\b(?:hackathon|olympiad)\b`),

			// Leadership achievements
			regexp.MustCompile(`(?i)(?:president|chair|head|captain|chief)\s+of`),
			regexp.MustCompile(`(?i)(?:organized|coordinated|spearheaded)\s+(?:a|an|the)`),
			regexp.MustCompile(`(?i)(?:committee\s+member|executive\s+board|student\s+council)`),
		},

		AchievementKeywords: []string{
			"dean's list", "honor roll", "scholarship", "cum laude",
			"magna cum laude", "summa cum laude", "valedictorian",
			"academic excellence", "merit award", "distinction",
			"honor society", "research grant", "best paper",
			"gold medal", "silver medal", "bronze medal",
			"first place", "second place", "third place",
			"honorable mention", "excellence award",
		},

		SectionPatterns: []SectionPattern{
			{Name: "summary", Pattern: regexp.MustCompile(`(?:SUMMARY|PROFESSIONAL\s+SUMMARY|PROFILE|OBJECTIVE|ABOUT\s+ME)(?:\s*:|$|\n)`)},
			{Name: "experience", Pattern: regexp.MustCompile(`(?:EXPERIENCE|WORK\s+EXPERIENCE|EMPLOYMENT|WORK\s+HISTORY|PROFESSIONAL\s+EXPERIENCE)(?:\s*:|$|\n)`)},
			{Name: "education", Pattern: regexp.MustCompile(`(?:EDUCATION|ACADEMIC\s+BACKGROUND|ACADEMIC\s+HISTORY|EDUCATIONAL\s+BACKGROUND)(?:\s*:|$|\n)`)},
			{Name: "skills", Pattern: regexp.MustCompile(`(?:SKILLS|SKILL\s+SET|SKILL\s+SUMMARY)(?:\s*:|$|\n)`)},
			{Name: "technical skills", Pattern: regexp.MustCompile(`(?:TECHNICAL\s+SKILLS|TECHNICAL\s+EXPERTISE|TECH\s+SKILLS|TECHNICAL\s+PROFICIENCIES)(?:\s*:|$|\n)`)},
			{Name: "academic projects", Pattern: regexp.MustCompile(`(?:ACADEMIC\s+PROJECTS|PERSONAL\s+PROJECTS|UNIVERSITY\s+PROJECTS|COURSE\s+PROJECTS|PROJECTS|PROJECT\s+EXPERIENCE)(?:\s*:|$|\n)`)},
			{Name: "extracurricular", Pattern: regexp.MustCompile(`(?:EXTRACURRICULAR|EXTRACURRICULAR\s+ACTIVITIES|CO-CURRICULAR|CO\-CURRICULAR\s+ACTIVITIES|ACTIVITIES|ACHIEVEMENTS\s+AND\s+ACTIVITIES)(?:\s*:|$|\n)`)},
			{Name: "certifications", Pattern: regexp.MustCompile(`(?:CERTIFICATIONS|CERTIFICATES|PROFESSIONAL\s+CERTIFICATIONS|ACCREDITATIONS)(?:\s*:|$|\n)`)},
			{Name: "achievements", Pattern: regexp.MustCompile(`(?:ACHIEVEMENTS|AWARDS|HONORS|RECOGNITIONS)(?:\s*:|$|\n)`)},
			{Name: "languages", Pattern: regexp.MustCompile(`(?:LANGUAGES|LANGUAGE\s+PROFICIENCY|LANGUAGE\s+SKILLS)(?:\s*:|$|\n)`)},
			{Name: "interests", Pattern: regexp.MustCompile(`(?:INTERESTS|HOBBIES)(?:\s*:|$|\n)`)},
			{Name: "volunteer", Pattern: regexp.MustCompile(`(?:VOLUNTEER|VOLUNTEERING|VOLUNTEER\s+EXPERIENCE|COMMUNITY\s+SERVICE)(?:\s*:|$|\n)`)},
			{Name: "references", Pattern: regexp.MustCompile(`(?:REFERENCES|PROFESSIONAL\s+REFERENCES)(?:\s*:|$|\n)`)},
			{Name: "publications", Pattern: regexp.MustCompile(`(?:PUBLICATIONS|PAPERS|RESEARCH\s+PAPERS|ARTICLES)(?:\s*:|$|\n)`)},
			{Name: "leadership", Pattern: regexp.MustCompile(`(?:LEADERSHIP|LEADERSHIP\s+EXPERIENCE|POSITIONS\s+OF\s+RESPONSIBILITY)(?:\s*:|$|\n)`)},
		},

		SectionAliases: map[string][]string{
			"technical skills":  {"skills"},
			"skills":            {"technical skills"},
			"academic projects": {"extracurricular"},
		},

		SectionIndicators: map[string][]string{
			"education": {
				"Bachelor Degree", "University", "CGPA", "GPA", "Foundation",
				"Matriculation", "Diploma",
			},
			"achievements": {
				"Runner Up", "Hackathon", "Winner", "Won", "1st", "2nd", "Award",
			},
		},

		HeaderKeywords: map[string][]string{
			"summary":           {"SUMMARY", "PROFILE", "OBJECTIVE"},
			"experience":        {"EXPERIENCE", "EMPLOYMENT"},
			"education":         {"EDUCATION", "ACADEMIC"},
			"technical skills":  {"TECHNICAL SKILLS", "TECH SKILLS"},
			"skills":            {"SKILLS"},
			"academic projects": {"ACADEMIC PROJECTS", "PROJECTS"},
			"extracurricular":   {"EXTRACURRICULAR", "ACTIVITIES"},
			"achievements":      {"ACHIEVEMENTS", "AWARDS", "HONORS"},
		},

		CanonicalSections: []string{
			"summary", "experience", "education", "skills", "technical skills",
			"academic projects", "achievements", "extracurricular",
			"certifications", "languages", "interests", "volunteer",
			"references", "publications", "leadership",
		},

		ExperiencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
			regexp.MustCompile(`(?i)experience\s+(?:of\s+)?(\d+)\+?\s*years?`),
		},

		YearsPattern: regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years|yrs)`),

		StudentPattern: regexp.MustCompile(`(?i)\b(?:student|studying|enrolled)\b`),

		InstitutionPattern: regexp.MustCompile(`(?i)\b(?:university|college|school|institute)\b`),
	}
}
