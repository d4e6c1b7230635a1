// Package content holds the literal text of the portfolio.
package content

// Link is an outbound or contact link.
type Link struct {
	Label string
	Href  string
	Icon  string
	// External links open in a new tab.
	External bool
}

// SkillGroup is one card in the skills grid.
type SkillGroup struct {
	Title string
	Icon  string
	Tags  []string
}

// Role is a position on the experience timeline.
type Role struct {
	Title        string
	Company      string
	Period       string
	Achievements []string
}

// Degree is an education card.
type Degree struct {
	Title       string
	Institution string
	Status      string
}

// Research describes the research area. Summary is markdown.
type Research struct {
	Title   string
	Summary string
}

// Portfolio is the whole page.
type Portfolio struct {
	Name      string
	Initials  string
	Headline  string
	Tagline   string
	About     string // markdown
	Location  string
	Email     Link
	Phone     Link
	Social    []Link
	Skills    []SkillGroup
	Roles     []Role
	Education []Degree
	Research  Research
	Intro     string
	Contact   []Link
	Copyright string
}

var (
	email    = Link{Label: "tharindujayasankha@gmail.com", Href: "mailto:tharindujayasankha@gmail.com", Icon: "mail"}
	phone    = Link{Label: "(+94) 712067024", Href: "tel:+94712067024", Icon: "phone"}
	github   = Link{Label: "GitHub", Href: "https://github.com/tharindu1999", Icon: "github", External: true}
	linkedin = Link{Label: "LinkedIn", Href: "https://www.linkedin.com/in/tharindu-jayasankha/", Icon: "linkedin", External: true}
)

// About is the lead paragraph of the about section.
var About = `Experienced Software Engineer skilled in full-stack development with expertise in **React.js**,
**.NET Core**, and **Kubernetes**. Proven ability to design scalable, high-performance software solutions,
collaborate effectively in agile, cross-functional teams, and align technology with business objectives.`

// ResearchSummary describes the research area.
var ResearchSummary = `Developed and implemented Vision Transformer (ViT) models for image classification tasks,
exploring the use of transformer architectures in computer vision. Focused on leveraging self-attention
mechanisms to capture global image features, improving model performance on large-scale datasets compared
to traditional CNNs. Enhanced model accuracy through fine-tuning, data augmentation, and hyperparameter
optimization, contributing to advancements in the application of transformers in visual recognition tasks.`

// Default returns the portfolio content.
func Default() Portfolio {
	return Portfolio{
		Name:     "THARINDU JAYASANKHA",
		Initials: "TJ",
		Headline: "SOFTWARE ENGINEER",
		Tagline:  "Full-Stack Developer | AI Engineer",
		About:    About,
		Location: "Tilwaththa, Remunagoda, Kaluthara",
		Email:    email,
		Phone:    phone,
		Social:   []Link{github, linkedin},
		Skills: []SkillGroup{
			{Title: "Languages & Frameworks", Icon: "code", Tags: []string{
				"React.js", "TypeScript/JavaScript", ".NET Core (C#, Entity Framework Core)", "Node.js",
				"Python", "Java", "Nx Workspace", "GraphQL", "Nearley.js", "Moo",
			}},
			{Title: "DevOps & Tools", Icon: "server", Tags: []string{
				"Docker", "Kubernetes", "Azure DevOps", "Git", "CI/CD Pipelines", "Redis",
			}},
			{Title: "Databases & Queues", Icon: "database", Tags: []string{
				"PostgreSQL", "MongoDB", "RabbitMQ", "SQL Server",
			}},
			{Title: "AI/ML & Tools", Icon: "brain", Tags: []string{
				"TensorFlow", "PyTorch", "Hugging Face Transformers", "scikit-learn", "LangChain", "RAG pipelines",
			}},
		},
		Roles: []Role{
			{
				Title:   "Software Engineer",
				Company: "Millennium IT ESP",
				Period:  "2024 - Present",
				Achievements: []string{
					"Developed and migrated authentication and authorization systems from Role-Based Access Control (RBAC) to Attribute-Based Access Control (ABAC).",
					"Integrated and configured ASP.NET Identity Server 4 for secure token management and authentication.",
					"Deployed and managed containerized microservices with Docker and Kubernetes, ensuring scalability, reliability, and high availability.",
					"Designed, optimized, and maintained relational (SQL Server, PostgreSQL) and non-relational (MongoDB) databases.",
					"Utilized Azure cloud services for streamlined application deployment, monitoring, and maintenance.",
					"Managed inter-service communication through RabbitMQ and implemented caching and session management using Redis.",
					"Developed Python-based solutions for automated image validation to improve accuracy and reliability in data processing workflows.",
					"Built and optimized chatbot solutions with Retrieval-Augmented Generation (RAG) pipelines, leveraging Python, LangChain, vector databases, and Node.js.",
					"Led research and development initiatives on cloud-native AI solutions using Azure Cognitive Services and multiple Large Language Models (LLMs), with a focus on real-time Speech-to-Text processing and advanced speaker diarization.",
				},
			},
			{
				Title:   "Associate Software Engineer",
				Company: "Millennium IT ESP",
				Period:  "2023 -2024",
				Achievements: []string{
					"Built responsive and scalable front-end applications using React.js, TypeScript, and Nx Workspace within a micro frontend architecture.",
					"Developed modern UI components with Tailwind CSS and Ant Design, ensuring cross-device responsiveness and accessibility.",
					"Developed RESTful Web APIs with ASP.NET Core, utilizing Entity Framework Core and LINQ for efficient data querying and business logic implementation.",
					"Integrated GraphQL APIs to optimize client-server communication in enterprise applications.",
					"Implemented advanced tokenizer systems and modular rule engines using Nearley.js and Moo in Node.js, capable of parsing complex domain-specific languages (DSLs) and validating high-volume data streams with low latency.",
				},
			},
			{
				Title:   "Intern Software Engineer",
				Company: "Millennium IT ESP",
				Period:  "2022 -2023",
				Achievements: []string{
					"Contributed to the development of a React.js-based spreadsheet-style calculation and reporting system, implementing features such as dynamic formulas, data validation, and custom report generation.",
					"Applied unit testing and integration testing to ensure software reliability and maintainability.",
					"Gained hands-on experience with version control (Git), Azure DevOps pipelines, and agile practices such as daily stand-ups, sprint planning, and reviews under Scrum methodology.",
				},
			},
		},
		Education: []Degree{
			{Title: "Master of Science in Artificial Intelligence", Institution: "University of Moratuwa", Status: "Reading"},
			{Title: "Bachelor of Science (Honors) in Computer Science", Institution: "Informatics Institute of Technology", Status: "2020 - 2024"},
			{Title: "GCE Advanced Level", Institution: "Kalutara Vidyalaya National School", Status: "2018"},
		},
		Research: Research{
			Title:   "Vision Transformers in Computer Vision",
			Summary: ResearchSummary,
		},
		Intro: "I'm always interested in hearing about new opportunities and collaborations. Feel free to reach out!",
		Contact: []Link{
			{Label: "Email Me", Href: email.Href, Icon: "mail"},
			{Label: "LinkedIn", Href: linkedin.Href, Icon: "linkedin", External: true},
			{Label: "GitHub", Href: github.Href, Icon: "github", External: true},
		},
		Copyright: "© 2025 Tharindu Jayasankha. All rights reserved.",
	}
}
