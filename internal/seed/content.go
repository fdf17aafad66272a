package seed

import "edutech/internal/model"

// BlogPosts returns the sample blog posts, newest first.
func BlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			Title:       "The Future of AI in Programming Education",
			Slug:        "future-ai-programming-education",
			Excerpt:     "Exploring how artificial intelligence is revolutionizing the way we teach and learn programming concepts.",
			Content:     "Full article content here...",
			Author:      "Alex Chen",
			AuthorRole:  "Python Expert",
			Category:    "AI & Education",
			Tags:        []string{"AI", "Education", "Programming"},
			Image:       image("photo-1677442136019-21780ecad995", 800, 400),
			Featured:    1,
			ReadTime:    "8 min read",
			PublishedAt: "2024-01-15",
		},
		{
			Title:       "Building Your First React Application: A Complete Guide",
			Slug:        "building-first-react-application",
			Excerpt:     "Step-by-step tutorial for beginners to create their first React application with modern best practices.",
			Content:     "Full article content here...",
			Author:      "Sarah Martinez",
			AuthorRole:  "JavaScript Specialist",
			Category:    "Tutorial",
			Tags:        []string{"React", "JavaScript", "Tutorial"},
			Image:       image("photo-1581276879432-15e50529f34b", 800, 400),
			Featured:    1,
			ReadTime:    "12 min read",
			PublishedAt: "2024-01-12",
		},
		{
			Title:       "Python Data Science: From Beginner to Professional",
			Slug:        "python-data-science-beginner-professional",
			Excerpt:     "Learn essential Python libraries and techniques for data analysis and machine learning projects.",
			Content:     "Full article content here...",
			Author:      "David Kim",
			AuthorRole:  "Data Science Expert",
			Category:    "Data Science",
			Tags:        []string{"Python", "Data Science", "Machine Learning"},
			Image:       image("photo-1526379095098-d400fd0bf935", 800, 400),
			Featured:    0,
			ReadTime:    "15 min read",
			PublishedAt: "2024-01-10",
		},
	}
}

// ResearchProjects returns the sample research initiatives.
func ResearchProjects() []model.ResearchProject {
	return []model.ResearchProject{
		{
			Title:       "AI-Powered Code Analysis",
			Description: "Developing machine learning models to automatically detect code vulnerabilities and suggest optimizations.",
			Status:      model.ResearchStatusActive,
			Category:    "Machine Learning",
			Partners:    []string{"Stanford University", "Google Research"},
			Image:       image("photo-1555949963-aa79dcee981c", 600, 300),
			Duration:    "2023-2025",
			CreatedAt:   "2023-01-15",
		},
		{
			Title:       "Blockchain Education Platform",
			Description: "Building a decentralized learning platform for cryptocurrency and blockchain development education.",
			Status:      model.ResearchStatusActive,
			Category:    "Blockchain",
			Partners:    []string{"MIT", "Ethereum Foundation"},
			Image:       image("photo-1639762681485-074b7f938ba0", 600, 300),
			Duration:    "2024-2026",
			CreatedAt:   "2024-01-10",
		},
		{
			Title:       "Inclusive Programming Education",
			Description: "Research on accessibility and inclusive design in programming education for underrepresented communities.",
			Status:      model.ResearchStatusRecruiting,
			Category:    "Education Research",
			Partners:    []string{"Carnegie Mellon", "Code.org"},
			Image:       image("photo-1522202176988-66273c2fd55f", 600, 300),
			Duration:    "2024-2025",
			CreatedAt:   "2024-01-05",
		},
	}
}

// StudentProjects returns the sample showcase projects.
func StudentProjects() []model.StudentProject {
	placeholder := func() *string {
		s := "#"
		return &s
	}
	return []model.StudentProject{
		{
			Title:        "EcoTrack - Sustainability Dashboard",
			Description:  "A comprehensive web application that helps users track their carbon footprint and suggest eco-friendly alternatives.",
			Student:      "Maria Rodriguez",
			Course:       "Full-Stack JavaScript",
			Category:     "Web Development",
			Technologies: []string{"React", "Node.js", "MongoDB", "D3.js"},
			Image:        image("photo-1441974231531-c6227db76b6e", 800, 400),
			GithubURL:    placeholder(),
			LiveURL:      placeholder(),
			Stars:        124,
			Views:        2340,
			Featured:     1,
			CompletedAt:  "2024-01-15",
		},
		{
			Title:        "AI-Powered Code Reviewer",
			Description:  "Machine learning tool that analyzes code quality, suggests improvements, and detects potential security vulnerabilities.",
			Student:      "James Park",
			Course:       "Python Data Science",
			Category:     "Machine Learning",
			Technologies: []string{"Python", "TensorFlow", "Flask", "Docker"},
			Image:        image("photo-1555949963-aa79dcee981c", 800, 400),
			GithubURL:    placeholder(),
			LiveURL:      placeholder(),
			Stars:        89,
			Views:        1850,
			Featured:     1,
			CompletedAt:  "2024-01-12",
		},
		{
			Title:        "CryptoPortfolio Tracker",
			Description:  "Real-time cryptocurrency portfolio management app with advanced analytics and price prediction features.",
			Student:      "Sarah Chen",
			Course:       "React Development",
			Category:     "Blockchain",
			Technologies: []string{"React", "TypeScript", "Chart.js", "Web3"},
			Image:        image("photo-1639762681485-074b7f938ba0", 800, 400),
			GithubURL:    placeholder(),
			LiveURL:      placeholder(),
			Stars:        156,
			Views:        3200,
			Featured:     1,
			CompletedAt:  "2024-01-10",
		},
	}
}
