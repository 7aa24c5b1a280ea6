package curriculum

// pythonTrack is the 60-day Python fundamentals track.
var pythonTrack = []Topic{
	// LEVEL 1: PYTHON BASICS (Day 1 - Day 10)
	{
		ID: "py1", Day: 1, Title: "Python Intro & Setup",
		Description: "Introduction to Python programming language and environment setup.",
		Tasks: []string{"What is Python?", "Installing Python & VS Code", "Running first program", "print()", "Comments"},
	},
	{
		ID: "py2", Day: 2, Title: "Variables & Data Types",
		Description: "Understanding variables and fundamental data types.",
		Tasks: []string{"Variables", "Data types (int, float, string, bool)", "Type casting"},
	},
	{
		ID: "py3", Day: 3, Title: "Input & Operators",
		Description: "Handling user input and basic operations.",
		Tasks: []string{"Input from user", "Operators (arithmetic, comparison, logical)"},
	},
	{
		ID: "py4", Day: 4, Title: "Control Flow: Conditionals",
		Description: "Making decisions with conditional statements.",
		Tasks: []string{"if, elif, else", "Nested conditions"},
	},
	{
		ID: "py5", Day: 5, Title: "Loops: For Loop",
		Description: "Iterating with for loops and range().",
		Tasks: []string{"for loop", "range()"},
	},
	{
		ID: "py6", Day: 6, Title: "Loops: While Loop",
		Description: "Iterating with while loops and loop control statements.",
		Tasks: []string{"while loop", "break, continue, pass"},
	},
	{
		ID: "py7", Day: 7, Title: "Functions",
		Description: "Defining and using reusable blocks of code.",
		Tasks: []string{"Functions", "Parameters & return values"},
	},
	{
		ID: "py8", Day: 8, Title: "Scope & Problem Solving",
		Description: "Understanding variable scope and applying concepts.",
		Tasks: []string{"Scope of variables", "Simple problem solving"},
	},
	{
		ID: "py9", Day: 9, Title: "Revision (Day 1–8)",
		Description: "Reviewing and consolidating basic concepts.",
		Tasks: []string{"Revision (Day 1–8)", "Small coding exercises"},
	},
	{
		ID: "py10", Day: 10, Title: "Mini Project 1",
		Description: "Applying basics to build a simple application.",
		Tasks: []string{"Mini Project: Number guessing game / Calculator"},
	},

	// LEVEL 2: CORE PYTHON FOR AI (Day 11 - Day 20)
	{
		ID: "py11", Day: 11, Title: "Lists",
		Description: "Working with ordered, mutable collections.",
		Tasks: []string{"Lists (create, access, modify)"},
	},
	{
		ID: "py12", Day: 12, Title: "List Methods",
		Description: "Manipulating lists with built-in methods and slicing.",
		Tasks: []string{"List methods", "List slicing"},
	},
	{
		ID: "py13", Day: 13, Title: "Tuples & Sets",
		Description: "Working with immutable sequences and unique collections.",
		Tasks: []string{"Tuples", "Sets"},
	},
	{
		ID: "py14", Day: 14, Title: "Dictionaries",
		Description: "Key-value data structures and operations.",
		Tasks: []string{"Dictionaries", "Dictionary methods"},
	},
	{
		ID: "py15", Day: 15, Title: "Strings",
		Description: "Text processing and string manipulation.",
		Tasks: []string{"Strings", "String methods"},
	},
	{
		ID: "py16", Day: 16, Title: "List Comprehensions",
		Description: "Concise syntax for creating lists.",
		Tasks: []string{"List comprehensions"},
	},
	{
		ID: "py17", Day: 17, Title: "Exception Handling",
		Description: "Managing errors and exceptions gracefully.",
		Tasks: []string{"try-except", "Error handling"},
	},
	{
		ID: "py18", Day: 18, Title: "Built-in Functions",
		Description: "Utilizing powerful built-in Python functions.",
		Tasks: []string{"Built-in functions (len, sum, max, min)"},
	},
	{
		ID: "py19", Day: 19, Title: "Revision (Day 11–18)",
		Description: "Reviewing core Python data structures.",
		Tasks: []string{"Revision (Day 11–18)"},
	},
	{
		ID: "py20", Day: 20, Title: "Mini Project 2",
		Description: "Building a data processing mini-project.",
		Tasks: []string{"Mini Project: Student marks analyzer"},
	},

	// LEVEL 3: NUMPY & PANDAS (Day 21 - Day 35)
	{
		ID: "py21", Day: 21, Title: "NumPy Basics",
		Description: "Introduction to numerical computing with NumPy.",
		Tasks: []string{"What is NumPy?", "Arrays"},
	},
	{
		ID: "py22", Day: 22, Title: "NumPy Array Operations",
		Description: "Manipulating array shapes and indexing.",
		Tasks: []string{"Array operations", "Shape & indexing"},
	},
	{
		ID: "py23", Day: 23, Title: "NumPy Math",
		Description: "Performing mathematical operations on arrays.",
		Tasks: []string{"Mathematical operations", "Matrix basics"},
	},
	{
		ID: "py24", Day: 24, Title: "NumPy Revision",
		Description: "Practicing NumPy concepts.",
		Tasks: []string{"NumPy revision + practice"},
	},
	{
		ID: "py25", Day: 25, Title: "Pandas Basics",
		Description: "Introduction to data analysis with Pandas.",
		Tasks: []string{"What is Pandas?", "Series & DataFrames"},
	},
	{
		ID: "py26", Day: 26, Title: "Reading Data",
		Description: "Loading and inspecting datasets.",
		Tasks: []string{"Reading CSV files", "Viewing data"},
	},
	{
		ID: "py27", Day: 27, Title: "Data Cleaning",
		Description: "Preprocessing data and handling missing values.",
		Tasks: []string{"Data cleaning", "Handling missing values"},
	},
	{
		ID: "py28", Day: 28, Title: "Filtering & Sorting",
		Description: "Selecting specific data subsets.",
		Tasks: []string{"Filtering & sorting data"},
	},
	{
		ID: "py29", Day: 29, Title: "Aggregation",
		Description: "Grouping and summarizing data.",
		Tasks: []string{"GroupBy & aggregation"},
	},
	{
		ID: "py30", Day: 30, Title: "Pandas Revision",
		Description: "Consolidating Pandas knowledge.",
		Tasks: []string{"Pandas revision"},
	},
	{
		ID: "py31", Day: 31, Title: "Matplotlib Basics",
		Description: "Introduction to data visualization.",
		Tasks: []string{"Matplotlib basics"},
	},
	{
		ID: "py32", Day: 32, Title: "Plot Types",
		Description: "Creating various types of charts.",
		Tasks: []string{"Line, bar, scatter plots"},
	},
	{
		ID: "py33", Day: 33, Title: "Seaborn Basics",
		Description: "Statistical data visualization.",
		Tasks: []string{"Seaborn basics"},
	},
	{
		ID: "py34", Day: 34, Title: "Visualization Practice",
		Description: "Hands-on practice with plotting libraries.",
		Tasks: []string{"Data visualization practice"},
	},
	{
		ID: "py35", Day: 35, Title: "Mini Project 3",
		Description: "Analyzing a real-world dataset.",
		Tasks: []string{"Mini Project: Analyze a real dataset (CSV)"},
	},

	// LEVEL 4: PYTHON FOR MACHINE LEARNING (Day 36 - Day 50)
	{
		ID: "py36", Day: 36, Title: "ML Introduction",
		Description: "Overview of Machine Learning concepts.",
		Tasks: []string{"What is Machine Learning?", "Types of ML"},
	},
	{
		ID: "py37", Day: 37, Title: "Scikit-Learn",
		Description: "Getting started with scikit-learn library.",
		Tasks: []string{"scikit-learn basics"},
	},
	{
		ID: "py38", Day: 38, Title: "Data Splitting",
		Description: "Preparing data for training and testing.",
		Tasks: []string{"Train-test split"},
	},
	{
		ID: "py39", Day: 39, Title: "Linear Regression",
		Description: "Predicting continuous values.",
		Tasks: []string{"Linear Regression"},
	},
	{
		ID: "py40", Day: 40, Title: "Logistic Regression",
		Description: "Binary classification problems.",
		Tasks: []string{"Logistic Regression"},
	},
	{
		ID: "py41", Day: 41, Title: "KNN Algorithm",
		Description: "K-Nearest Neighbors implementation.",
		Tasks: []string{"KNN algorithm"},
	},
	{
		ID: "py42", Day: 42, Title: "Model Evaluation",
		Description: "Assessing model performance.",
		Tasks: []string{"Model evaluation (accuracy)"},
	},
	{
		ID: "py43", Day: 43, Title: "Confusion Matrix",
		Description: "Understanding classification errors.",
		Tasks: []string{"Confusion matrix"},
	},
	{
		ID: "py44", Day: 44, Title: "Mini ML Project",
		Description: "Building a small ML model.",
		Tasks: []string{"Mini ML project"},
	},
	{
		ID: "py45", Day: 45, Title: "Decision Trees",
		Description: "Tree-based learning models.",
		Tasks: []string{"Decision Tree"},
	},
	{
		ID: "py46", Day: 46, Title: "Random Forest",
		Description: "Ensemble learning method.",
		Tasks: []string{"Random Forest"},
	},
	{
		ID: "py47", Day: 47, Title: "ML Revision",
		Description: "Reviewing ML algorithms and concepts.",
		Tasks: []string{"ML revision"},
	},
	{
		ID: "py48", Day: 48, Title: "Hyperparameter Tuning",
		Description: "Optimizing model parameters.",
		Tasks: []string{"Hyperparameter tuning (basic)"},
	},
	{
		ID: "py49", Day: 49, Title: "ML Workflow",
		Description: "Complete end-to-end ML pipeline.",
		Tasks: []string{"End-to-end ML workflow"},
	},
	{
		ID: "py50", Day: 50, Title: "Final ML Project",
		Description: "Comprehensive Machine Learning project.",
		Tasks: []string{"Final ML Project"},
	},

	// LEVEL 5: PYTHON FOR AI / DEEP LEARNING (Day 51 - Day 60)
	{
		ID: "py51", Day: 51, Title: "Deep Learning Intro",
		Description: "Introduction to Deep Learning and Neural Networks.",
		Tasks: []string{"What is Deep Learning?", "Neural networks basics"},
	},
	{
		ID: "py52", Day: 52, Title: "Perceptrons",
		Description: "Understanding the building blocks of neural networks.",
		Tasks: []string{"Perceptron & activation functions"},
	},
	{
		ID: "py53", Day: 53, Title: "Framework Setup",
		Description: "Setting up TensorFlow or PyTorch.",
		Tasks: []string{"TensorFlow / PyTorch setup"},
	},
	{
		ID: "py54", Day: 54, Title: "First Neural Network",
		Description: "Building and training a simple neural network.",
		Tasks: []string{"Build first neural network"},
	},
	{
		ID: "py55", Day: 55, Title: "Training Concepts",
		Description: "Understanding loss functions and optimizers.",
		Tasks: []string{"Loss & optimizer"},
	},
	{
		ID: "py56", Day: 56, Title: "Image Classification",
		Description: "Classifying images with neural networks.",
		Tasks: []string{"Image classification basics"},
	},
	{
		ID: "py57", Day: 57, Title: "Model Improvement",
		Description: "Techniques to enhance model performance.",
		Tasks: []string{"Model improvement"},
	},
	{
		ID: "py58", Day: 58, Title: "Regularization",
		Description: "Preventing overfitting in models.",
		Tasks: []string{"Overfitting & regularization"},
	},
	{
		ID: "py59", Day: 59, Title: "AI Revision",
		Description: "Reviewing AI and Deep Learning concepts.",
		Tasks: []string{"AI revision"},
	},
	{
		ID: "py60", Day: 60, Title: "Final AI Project",
		Description: "Capstone project for the AI curriculum.",
		Tasks: []string{"Final AI mini project 🎉"},
	},
}
