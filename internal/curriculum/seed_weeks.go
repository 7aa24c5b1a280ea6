package curriculum

// weeksTrack is the 24-week AI engineering program, one topic per week.
var weeksTrack = []Topic{
	// MONTH 1: Python, Git & Engineering Basics
	{
		ID: "wk1", Day: 1, Title: "Python Fundamentals",
		Description: "Syntax, variables, loops, execution flow, debugging mindset.",
		Tasks: []string{"Learn Syntax & Variables", "Understand Stack & Heap", "Build: Calculator", "Build: Number Guessing Game"},
	},
	{
		ID: "wk2", Day: 2, Title: "Functions & Data Structures",
		Description: "Functions, scope, lists, dicts, mutability, time complexity.",
		Tasks: []string{"Master Functions & Scope", "Data Structures Deep Dive", "Build: Student Marks Analyzer", "Build: To-Do App"},
	},
	{
		ID: "wk3", Day: 3, Title: "Writing Real Python Code",
		Description: "Modules, imports, file I/O, exceptions, logging.",
		Tasks: []string{"Virtual Environments", "File I/O & Exceptions", "Build: File Organizer", "Build: CSV Processor"},
	},
	{
		ID: "wk4", Day: 4, Title: "Git & Collaboration",
		Description: "Git internals, branching, PRs, code reviews.",
		Tasks: []string{"Git Internals", "Branching & Merging", "Push Month-1 Projects to GitHub", "Write READMEs"},
	},

	// MONTH 2: Data, Text & Embeddings Foundations
	{
		ID: "wk5", Day: 5, Title: "Pandas & EDA",
		Description: "Pandas internals, indexing, filtering, joins, EDA.",
		Tasks: []string{"Pandas Deep Dive", "Data Leakage Intuition", "Build: Dataset Analysis Notebook", "Exploratory Analysis"},
	},
	{
		ID: "wk6", Day: 6, Title: "Data Cleaning",
		Description: "Missing values, outliers, feature engineering, pipelines.",
		Tasks: []string{"Handle Missing Values", "Feature Engineering", "Build: Cleaned Dataset", "Data Pipelines"},
	},
	{
		ID: "wk7", Day: 7, Title: "Text Processing",
		Description: "Normalization, tokenization, regex, NLP pipelines.",
		Tasks: []string{"Text Normalization", "Regex Basics", "Build: Text Cleaning Pipeline", "NLP Preprocessing"},
	},
	{
		ID: "wk8", Day: 8, Title: "Embeddings & Similarity",
		Description: "Vectors, cosine similarity, FAISS, embeddings APIs.",
		Tasks: []string{"Embeddings Theory", "Cosine Similarity", "Build: Semantic Search Tool", "OpenAI/HF APIs"},
	},

	// MONTH 3: Machine Learning Foundations
	{
		ID: "wk9", Day: 9, Title: "ML Basics & Framing",
		Description: "Supervised vs unsupervised, train/test split, use cases.",
		Tasks: []string{"ML vs Rules", "Train/Test Split", "Define ML Problem", "Real-world Use Cases"},
	},
	{
		ID: "wk10", Day: 10, Title: "Core ML Models",
		Description: "Regression, KNN, Decision Trees, bias, scikit-learn.",
		Tasks: []string{"Linear/Logistic Regression", "Decision Trees & KNN", "Build: Regression Model", "Scikit-learn Pipelines"},
	},
	{
		ID: "wk11", Day: 11, Title: "Model Evaluation",
		Description: "Accuracy, precision, recall, F1, ROC-AUC, confusion matrix.",
		Tasks: []string{"Evaluation Metrics", "Confusion Matrix", "Build: Evaluation Report", "Error Analysis"},
	},
	{
		ID: "wk12", Day: 12, Title: "ML Best Practices",
		Description: "Overfitting, bias-variance, tuning, feature importance.",
		Tasks: []string{"Bias-Variance Tradeoff", "Hyperparameter Tuning", "Build: ML Mini-Project", "End-to-end Workflow"},
	},

	// MONTH 4: Generative AI & Prompt Engineering
	{
		ID: "wk13", Day: 13, Title: "LLM Fundamentals",
		Description: "Transformers, attention, tokens, context windows.",
		Tasks: []string{"Transformer Basics", "Context Windows", "Build: Basic Chatbot", "Inference Tradeoffs"},
	},
	{
		ID: "wk14", Day: 14, Title: "Prompt Engineering",
		Description: "Chain-of-thought, few-shot, structured outputs.",
		Tasks: []string{"Role-based Prompting", "Chain-of-Thought", "Build: Summarizer", "Prompt Iteration"},
	},
	{
		ID: "wk15", Day: 15, Title: "GenAI APIs",
		Description: "OpenAI/HF APIs, streaming, rate limits, cost management.",
		Tasks: []string{"API Integration", "Streaming Responses", "Build: Resume Reviewer", "Cost Management"},
	},
	{
		ID: "wk16", Day: 16, Title: "Responsible AI",
		Description: "Hallucinations, bias, injection, guardrails.",
		Tasks: []string{"Safety Filters", "Prompt Injection Prevention", "Build: Constrained Chatbot", "Output Validation"},
	},

	// MONTH 5: RAG, Vector Stores & Agent Frameworks
	{
		ID: "wk17", Day: 17, Title: "RAG Fundamentals",
		Description: "RAG vs fine-tuning, chunking, retrieval failures.",
		Tasks: []string{"RAG Concepts", "Chunking Strategies", "Build: Chunking Pipeline", "Metadata Filtering"},
	},
	{
		ID: "wk18", Day: 18, Title: "Vector Databases",
		Description: "FAISS, Chroma, Pinecone, indexing, ANN search.",
		Tasks: []string{"Vector DB Basics", "Indexing Strategies", "Build: Vector Search System", "Similarity Metrics"},
	},
	{
		ID: "wk19", Day: 19, Title: "RAG Systems",
		Description: "Retrieval + generation, reranking, RAG evaluation.",
		Tasks: []string{"Context Injection", "Reranking", "Build: Document Q&A Bot", "RAG Evaluation"},
	},
	{
		ID: "wk20", Day: 20, Title: "Frameworks & Agents",
		Description: "LangChain, CrewAI, tools, function calling.",
		Tasks: []string{"LangChain/CrewAI", "Tool Calling", "Build: Multi-step AI Workflow", "Agent Memory"},
	},

	// MONTH 6: Agentic Systems, Production & Capstone
	{
		ID: "wk21", Day: 21, Title: "Agentic Workflows",
		Description: "Planning, reasoning, tool orchestration, failure handling.",
		Tasks: []string{"Agent Planning", "Tool Orchestration", "Build: Agent Automation", "Failure Handling"},
	},
	{
		ID: "wk22", Day: 22, Title: "Evaluation & Optimization",
		Description: "LLM-as-judge, cost, latency, caching.",
		Tasks: []string{"LLM Evaluation", "Latency Optimization", "Build: Evaluation Report", "Caching Strategies"},
	},
	{
		ID: "wk23", Day: 23, Title: "Production Readiness",
		Description: "FastAPI, logging, monitoring, deployments.",
		Tasks: []string{"FastAPI & Async", "Logging & Monitoring", "Build: Production AI Service", "Deployment"},
	},
	{
		ID: "wk24", Day: 24, Title: "Capstone Project",
		Description: "System design, integration, documentation, demo.",
		Tasks: []string{"System Design", "Integration", "Build: Final Capstone", "Documentation & Demo"},
	},
}
