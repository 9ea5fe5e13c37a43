package entity

// ProfileContext is the static résumé dataset the assistant is grounded in.
// It is loaded once at startup and never mutated; the assembler treats it as
// read-only input.
type ProfileContext struct {
	Personal   Personal     `json:"personal" yaml:"personal"`
	Summary    string       `json:"summary" yaml:"summary"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Projects   []Project    `json:"projects" yaml:"projects"`
	Skills     Skills       `json:"skills" yaml:"skills"`
	Education  []Education  `json:"education" yaml:"education"`
	Coursework []string     `json:"coursework" yaml:"coursework"`

	// Rules are the behavioral boundaries the assistant must follow. They are
	// rendered into the prompt verbatim.
	Rules []string `json:"rules" yaml:"rules"`
}

type Personal struct {
	Name           string `json:"name" yaml:"name"`
	Role           string `json:"role" yaml:"role"`
	Location       string `json:"location" yaml:"location"`
	OpenToRelocate bool   `json:"open_to_relocate" yaml:"open_to_relocate"`
	Email          string `json:"email" yaml:"email"`
	Phone          string `json:"phone" yaml:"phone"`
	Portfolio      string `json:"portfolio" yaml:"portfolio"`
	GitHub         string `json:"github" yaml:"github"`
	LinkedIn       string `json:"linkedin" yaml:"linkedin"`
}

type Experience struct {
	Company    string   `json:"company" yaml:"company"`
	Role       string   `json:"role" yaml:"role"`
	Duration   string   `json:"duration" yaml:"duration"`
	Location   string   `json:"location" yaml:"location"`
	Highlights []string `json:"highlights" yaml:"highlights"`
}

type Project struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

type Skills struct {
	Programming []string `json:"programming" yaml:"programming"`
	Tools       []string `json:"tools" yaml:"tools"`
}

type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Year        string `json:"year" yaml:"year"`
	GPA         string `json:"gpa" yaml:"gpa"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
}

// DefaultProfile returns the built-in résumé dataset. A deployment can replace
// it with a profile file (see config.LoadProfile) without rebuilding.
func DefaultProfile() *ProfileContext {
	return &ProfileContext{
		Personal: Personal{
			Name:           "Syed Tabish Haider",
			Role:           "Full Stack Developer",
			Location:       "Delhi NCR (Ghaziabad, UP)",
			OpenToRelocate: true,
			Email:          "sayedtabish72@gmail.com",
			Phone:          "8920637836",
			Portfolio:      "https://portfolio-2.0-main.vercel.app",
			GitHub:         "https://github.com/Tabishhaider72",
			LinkedIn:       "https://www.linkedin.com/in/sayed-tabish-haider",
		},
		Summary: "Full-stack developer specializing in scalable web applications using React, Next.js, TypeScript, and Node.js. Experienced in AI-driven systems, modern SaaS architectures, and performance optimization.",
		Experience: []Experience{
			{
				Company:  "SKILZEN HIRING-BIRD",
				Role:     "Full Stack Developer Intern",
				Duration: "August 2024 – January 2025",
				Location: "Remote",
				Highlights: []string{
					"Designed and implemented role-scoped MySQL storage subsystem with strict access controls improving permission enforcement across student and recruiter roles.",
					"Built 10+ responsive and accessible UI components from Figma using Next.js and Tailwind CSS, improving delivery speed by 25%.",
					"Optimized multi-stage Docker builds for AWS deployment reducing image size by 30%.",
				},
			},
			{
				Company:  "I 2 TECHNOLOGY",
				Role:     "Frontend Engineer Intern",
				Duration: "September 2023 – May 2024",
				Location: "Remote, India",
				Highlights: []string{
					"Architected scalable frontend using Next.js 13 and TypeScript with SSR-based routing.",
					"Implemented server-side rendering and dynamic routing improving SEO and performance.",
					"Integrated OAuth 2.0 authentication and notification system using Resend.",
				},
			},
		},
		Projects: []Project{
			{
				Name:        "CVRoaster.AI",
				Description: "AI-powered resume screening platform with ATS-style scoring and recruiter evaluation using Google GenAI.",
				Tech:        []string{"Next.js", "NestJS", "TypeScript", "Google GenAI", "PDF Parse", "REST API"},
				Highlights: []string{
					"Schema-enforced JSON response validation to prevent malformed AI outputs.",
					"Modular NestJS backend with PDF parser, ATS scoring engine, and AI analysis layer.",
					"Validated REST endpoint with strict DTO contracts.",
				},
			},
			{
				Name:        "AI Planet Doc.Chat",
				Description: "RAG-based system for converting PDFs into conversational Q&A.",
				Tech:        []string{"LangChain", "FastAPI", "Python", "Convex", "Next.js", "TypeScript"},
				Highlights: []string{
					"Containerized backend for PDF ingestion and embedding.",
					"Streaming chat responses with session persistence.",
				},
			},
			{
				Name:        "BookMyRoom",
				Description: "Full-stack hotel booking platform with SSR listings and transactional booking system.",
				Tech:        []string{"Next.js", "Node.js", "Prisma", "MongoDB", "Tailwind CSS"},
				Highlights: []string{
					"Secure authentication and real-time data fetching.",
					"Transactional booking flows and concurrency-safe design.",
					"Cloudinary asset storage and optimized query filtering.",
				},
			},
		},
		Skills: Skills{
			Programming: []string{
				"JavaScript", "TypeScript", "React.js", "Next.js", "Node.js",
				"Express.js", "Python", "LangChain", "FastAPI", "NestJS",
				"PostgreSQL", "MongoDB", "Prisma", "REST API", "HTML/CSS",
				"GSAP", "Framer Motion",
			},
			Tools: []string{
				"Git", "Postman", "AWS", "Vercel", "Docker", "GitLab",
				"Supabase", "Figma", "GCP", "WordPress",
			},
		},
		Education: []Education{
			{
				Institution: "Inderprastha Engineering College",
				Degree:      "Bachelor's in Computer Science and Engineering",
				Year:        "July 2024",
				GPA:         "8.0/10",
				Location:    "Ghaziabad, Delhi NCR",
			},
			{
				Institution: "Arunachal University of Studies",
				Degree:      "Diploma High School in Computer Science",
				Year:        "August 2021",
				GPA:         "7.2/10",
			},
		},
		Coursework: []string{
			"Data Structures", "Artificial Intelligence", "Machine Learning",
			"Computer Networks", "OOPS", "Generative AI", "Database Management",
		},
		Rules: []string{
			"Only answer questions related to Syed Tabish Haider.",
			"Use only the provided resume data.",
			"If information is not available, say you don't know.",
			"Reject unrelated questions politely.",
			"Do not invent experience or skills.",
		},
	}
}
