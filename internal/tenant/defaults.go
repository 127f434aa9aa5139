package tenant

// DefaultID is the id of the built-in tenant.
const DefaultID = "default"

var aboutMe = `I love building software that is both useful and fun, and I am always curious about how
things work behind the scenes. Most of my projects start with a simple idea and turn into a chance
to learn something new, whether that is a different language, a new tool, or a tricky problem.`

// Default returns the built-in tenant served when no other tenant matches.
func Default() Tenant {
	return Tenant{
		ID:   DefaultID,
		Name: "Default CV",
		Profile: Profile{
			Name:  "Jane Doe",
			About: aboutMe,
		},
		Experiences: []Experience{
			{
				ID:           1,
				Company:      "Tech Company Inc.",
				Position:     "Senior Software Architect",
				Period:       "2020 - Present",
				Description:  "Leading architecture design and implementation for cloud-native applications",
				Technologies: []string{"Nuxt", "Vue.js", "Node.js", "Docker", "Kubernetes"},
			},
			{
				ID:           2,
				Company:      "Software Solutions Ltd.",
				Position:     "Full Stack Developer",
				Period:       "2017 - 2020",
				Description:  "Developed enterprise web applications and microservices",
				Technologies: []string{"Vue.js", "Express", "PostgreSQL", "Redis"},
			},
		},
		Studies: []Study{
			{
				ID:          1,
				Institution: "Technical University",
				Degree:      "Master of Science in Computer Science",
				Period:      "2015 - 2017",
				Focus:       "Software Engineering & Distributed Systems",
			},
			{
				ID:          2,
				Institution: "University of Technology",
				Degree:      "Bachelor of Science in Computer Science",
				Period:      "2012 - 2015",
				Focus:       "Computer Science Fundamentals",
			},
		},
		Projects: []Project{
			{
				ID:           1,
				Name:         "E-Commerce Platform",
				Type:         "Web Application",
				Period:       "2022 - 2023",
				Description:  "Built a scalable e-commerce platform with microservices architecture, supporting millions of transactions per day",
				Technologies: []string{"Vue.js", "Node.js", "MongoDB", "Redis", "Docker"},
				Screenshots:  []string{"/images/projects/ecommerce-1.png", "/images/projects/ecommerce-2.png"},
				Logo:         "/images/projects/ecommerce-logo.png",
			},
			{
				ID:           2,
				Name:         "Mobile Banking App",
				Type:         "Mobile Application",
				Period:       "2021 - 2022",
				Description:  "Developed a secure mobile banking application with biometric authentication and real-time transaction monitoring",
				Technologies: []string{"React Native", "TypeScript", "GraphQL", "PostgreSQL"},
				Images:       []string{"/images/projects/banking-app.png"},
			},
			{
				ID:           3,
				Name:         "Cloud Infrastructure",
				Type:         "DevOps Project",
				Period:       "2020 - 2021",
				Description:  "Designed and implemented cloud infrastructure for enterprise applications using Infrastructure as Code",
				Technologies: []string{"Kubernetes", "Terraform", "AWS", "Jenkins", "Prometheus"},
				Logo:         "/images/projects/cloud-logo.png",
			},
		},
	}
}
