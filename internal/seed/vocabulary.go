package seed

import "github.com/hongminglow/campus-library/internal/models"

var categories = map[models.Collection][]string{
	models.CollectionAcademic: {
		"mathematics", "physics", "chemistry", "computer science", "electrical engineering",
		"mechanical engineering", "civil engineering", "electronics", "biotechnology", "environmental science",
	},
	models.CollectionNewspapers: {"daily", "weekly", "financial", "technical", "educational"},
	models.CollectionNovels: {
		"fiction", "science fiction", "fantasy", "mystery", "thriller", "romance",
		"historical fiction", "biography", "self-help",
	},
	models.CollectionPapers: {"mid-term", "end-term", "entrance exams", "competitive exams", "research papers"},
}

var authors = map[models.Collection][]string{
	models.CollectionAcademic: {
		"B.S. Grewal", "R.K. Gaur", "H.C. Verma", "Thomas H. Cormen", "R.K. Bansal", "James W. Nilsson",
		"Frank M. White", "M. Morris Mano", "Michael Sipser", "Yunus A. Cengel", "Norman S. Nise",
		"R.C. Hibbeler", "Adel S. Sedra", "Andrew S. Tanenbaum", "Alan V. Oppenheim", "Abraham Silberschatz",
		"P.C. Jain", "C. Venkatramaiah", "Stuart Russell",
	},
	models.CollectionNewspapers: {
		"The Times of India", "The Hindu", "Economic Times", "The Indian Express", "Hindustan Times",
		"The Tribune", "Dainik Bhaskar", "Amar Ujala", "The Telegraph", "Deccan Herald", "Business Standard", "Mint",
	},
	models.CollectionNovels: {
		"Chetan Bhagat", "Amish Tripathi", "Arundhati Roy", "Vikram Seth", "Jhumpa Lahiri", "Ruskin Bond",
		"Khushwant Singh", "Rabindranath Tagore", "R.K. Narayan", "Salman Rushdie", "Anita Desai",
		"Kiran Desai", "Amitav Ghosh", "Shashi Tharoor", "Sudha Murty", "Devdutt Pattanaik",
	},
	models.CollectionPapers: {
		"CCET Faculty", "AICTE", "UGC", "CBSE", "GATE Committee", "JEE Committee", "IIT Delhi",
		"IIT Bombay", "IIT Kanpur", "PEC University", "Punjab University", "Delhi University",
	},
}

var academicPrefixes = []string{
	"Introduction to", "Advanced", "Fundamentals of", "Principles of", "Modern", "Applied", "Theoretical",
	"Practical", "Comprehensive Guide to", "Handbook of", "Concepts in", "Studies in", "Essentials of",
}

var academicTopics = []string{
	"Calculus", "Algebra", "Mechanics", "Thermodynamics", "Algorithms", "Data Structures", "Circuit Analysis",
	"Fluid Dynamics", "Digital Logic", "Control Systems", "Structural Analysis", "Database Systems",
	"Operating Systems", "Artificial Intelligence", "Machine Learning", "Quantum Physics", "Organic Chemistry",
	"Microprocessors", "Networking",
}

var newspaperTitles = []string{
	"The Engineering Times", "Tech Chronicle", "Science Daily", "Innovation Today", "Campus Herald",
	"CCET Gazette", "Engineering Insights", "Research Weekly", "Academic Observer", "The Student Express",
	"Industry Connect", "Future Engineers",
}

var novelTitles = []string{
	"The Last Equation", "Midnight in the Lab", "The Quantum Paradox", "Bridge of Innovation", "The Algorithm",
	"Silicon Dreams", "The Engineer's Daughter", "Beyond the Stars", "The Code Breaker", "Echoes of Invention",
	"The Patent", "Circuits of the Heart", "The Architect's Vision", "Digital Horizons", "The Last Theorem",
}

var examTypes = []string{
	"Mid-Term Examination", "End Semester Examination", "Supplementary Examination", "Entrance Test",
	"Competitive Examination", "Placement Test", "Aptitude Test", "Technical Assessment", "Practical Examination",
}

var paperSubjects = []string{
	"Engineering Mathematics", "Applied Physics", "Computer Programming", "Data Structures",
	"Digital Electronics", "Microprocessors", "Control Systems", "Fluid Mechanics", "Thermodynamics",
	"Structural Analysis", "Machine Design", "Power Systems",
}
