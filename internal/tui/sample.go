package tui

// SampleResume and SampleJob are loaded with ctrl+l.
const (
	SampleResume = `Computer Science Student at University of California
• Proficient in Python, Java, and JavaScript
• Experience with React and Flask frameworks
• Built a task management web application using Python and SQL
• Familiar with Git version control and Docker
• Strong problem-solving and teamwork skills
• Coursework: Data Structures, Algorithms, Database Systems`

	SampleJob = `Software Engineering Intern - Summer 2024
Requirements:
• Strong programming skills in Python or Java
• Experience with React.js or similar frontend frameworks
• Knowledge of AWS cloud services (EC2, S3)
• Familiarity with Docker and Kubernetes
• Understanding of REST APIs and microservices
• Experience with SQL and NoSQL databases (MongoDB preferred)
• Machine learning basics is a plus
• Excellent communication and collaboration skills`
)
