package seed

import (
	"strconv"

	"edutech/internal/model"
)

const unsplash = "https://images.unsplash.com/"

// image builds an Unsplash URL cropped to w x h.
func image(photo string, w, h int) string {
	return unsplash + photo + "?ixlib=rb-4.0.3&auto=format&fit=crop&w=" + strconv.Itoa(w) + "&h=" + strconv.Itoa(h) + "&q=80"
}

// Courses returns the six catalog courses in display order.
func Courses() []model.Course {
	return []model.Course{
		{
			Title:       "Python Programming",
			Slug:        "python",
			Description: "Master Python programming from basics to advanced concepts. Perfect for beginners and aspiring data scientists.",
			Level:       model.LevelBeginner,
			Duration:    "40 hours",
			Price:       "Free",
			Students:    15420,
			Rating:      5,
			Image:       image("photo-1526379095098-d400fd0bf935", 800, 400),
			Modules: []model.CourseModule{
				{Title: "Python Basics", Description: "Variables, data types, operators, and control structures", LessonCount: 8, Duration: "6 hours"},
				{Title: "Data Structures", Description: "Lists, dictionaries, sets, and tuples in Python", LessonCount: 6, Duration: "5 hours"},
				{Title: "Object-Oriented Programming", Description: "Classes, objects, inheritance, and polymorphism", LessonCount: 10, Duration: "8 hours"},
				{Title: "Web Development with Flask", Description: "Build web applications using Python Flask framework", LessonCount: 12, Duration: "10 hours"},
				{Title: "Data Science Fundamentals", Description: "NumPy, Pandas, and Matplotlib for data analysis", LessonCount: 15, Duration: "11 hours"},
			},
		},
		{
			Title:       "JavaScript Mastery",
			Slug:        "javascript",
			Description: "Master modern JavaScript, ES6+, and build dynamic web applications with popular frameworks.",
			Level:       model.LevelIntermediate,
			Duration:    "35 hours",
			Price:       "$49",
			Students:    22340,
			Rating:      5,
			Image:       image("photo-1579468118864-1b9ea3c0db4a", 800, 400),
			Modules: []model.CourseModule{
				{Title: "Modern JavaScript ES6+", Description: "Arrow functions, destructuring, modules, and async/await", LessonCount: 10, Duration: "8 hours"},
				{Title: "DOM Manipulation", Description: "Interactive web pages and event handling", LessonCount: 8, Duration: "6 hours"},
				{Title: "Asynchronous JavaScript", Description: "Promises, async/await, and API integration", LessonCount: 7, Duration: "5 hours"},
				{Title: "React Fundamentals", Description: "Components, state, props, and hooks", LessonCount: 12, Duration: "10 hours"},
				{Title: "Project: Full-Stack App", Description: "Build a complete web application with React and Node.js", LessonCount: 8, Duration: "6 hours"},
			},
		},
		{
			Title:       "Java Enterprise",
			Slug:        "java",
			Description: "Enterprise Java development with Spring Framework, microservices, and scalable application architecture.",
			Level:       model.LevelAdvanced,
			Duration:    "50 hours",
			Price:       "$79",
			Students:    18520,
			Rating:      5,
			Image:       image("photo-1517077304055-6e89abbf09b0", 800, 400),
			Modules: []model.CourseModule{
				{Title: "Java Fundamentals Review", Description: "OOP concepts, collections, and best practices", LessonCount: 6, Duration: "5 hours"},
				{Title: "Spring Framework", Description: "Dependency injection, Spring Boot, and REST APIs", LessonCount: 15, Duration: "12 hours"},
				{Title: "Database Integration", Description: "JPA, Hibernate, and database design patterns", LessonCount: 10, Duration: "8 hours"},
				{Title: "Microservices Architecture", Description: "Service discovery, API gateways, and containerization", LessonCount: 12, Duration: "10 hours"},
				{Title: "Testing & Deployment", Description: "Unit testing, integration testing, and CI/CD pipelines", LessonCount: 18, Duration: "15 hours"},
			},
		},
		{
			Title:       "SQL & Databases",
			Slug:        "sql",
			Description: "Master database design, SQL queries, data modeling, and database administration from ground up.",
			Level:       model.LevelBeginner,
			Duration:    "25 hours",
			Price:       "$39",
			Students:    12840,
			Rating:      4,
			Image:       image("photo-1544383835-bda2bc66a55d", 800, 400),
			Modules: []model.CourseModule{
				{Title: "Database Fundamentals", Description: "Relational databases, tables, and relationships", LessonCount: 5, Duration: "4 hours"},
				{Title: "SQL Basics", Description: "SELECT, INSERT, UPDATE, DELETE operations", LessonCount: 8, Duration: "6 hours"},
				{Title: "Advanced Queries", Description: "JOINs, subqueries, and complex data retrieval", LessonCount: 10, Duration: "8 hours"},
				{Title: "Database Design", Description: "Normalization, indexes, and performance optimization", LessonCount: 7, Duration: "5 hours"},
				{Title: "Database Administration", Description: "Backup, security, and maintenance procedures", LessonCount: 5, Duration: "2 hours"},
			},
		},
		{
			Title:       "C++ Programming",
			Slug:        "cpp",
			Description: "Systems programming, memory management, algorithms, and performance optimization with modern C++.",
			Level:       model.LevelAdvanced,
			Duration:    "60 hours",
			Price:       "$89",
			Students:    8940,
			Rating:      5,
			Image:       image("photo-1555949963-aa79dcee981c", 800, 400),
			Modules: []model.CourseModule{
				{Title: "C++ Fundamentals", Description: "Syntax, variables, functions, and basic I/O", LessonCount: 8, Duration: "6 hours"},
				{Title: "Object-Oriented Programming", Description: "Classes, inheritance, polymorphism, and encapsulation", LessonCount: 12, Duration: "10 hours"},
				{Title: "Memory Management", Description: "Pointers, references, smart pointers, and RAII", LessonCount: 15, Duration: "12 hours"},
				{Title: "STL and Algorithms", Description: "Standard Template Library and algorithm design", LessonCount: 18, Duration: "15 hours"},
				{Title: "Advanced Topics", Description: "Templates, multithreading, and performance optimization", LessonCount: 20, Duration: "17 hours"},
			},
		},
		{
			Title:       "React Development",
			Slug:        "react",
			Description: "Build modern web applications with React, hooks, state management, and popular ecosystem tools.",
			Level:       model.LevelIntermediate,
			Duration:    "30 hours",
			Price:       "$59",
			Students:    25670,
			Rating:      5,
			Image:       image("photo-1581276879432-15e50529f34b", 800, 400),
			Modules: []model.CourseModule{
				{Title: "React Fundamentals", Description: "Components, JSX, props, and state", LessonCount: 8, Duration: "6 hours"},
				{Title: "React Hooks", Description: "useState, useEffect, custom hooks, and context", LessonCount: 10, Duration: "8 hours"},
				{Title: "State Management", Description: "Redux, Context API, and state patterns", LessonCount: 8, Duration: "6 hours"},
				{Title: "Routing and Navigation", Description: "React Router and single-page application patterns", LessonCount: 6, Duration: "4 hours"},
				{Title: "Testing and Deployment", Description: "Jest, React Testing Library, and production deployment", LessonCount: 8, Duration: "6 hours"},
			},
		},
	}
}
