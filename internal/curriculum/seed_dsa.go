package curriculum

// dsaTrack is the data-structures and algorithms track.
var dsaTrack = []Topic{
	// PHASE 1: BASICS + TIME COMPLEXITY (Days 1-5)
	{
		ID: "dsa1", Day: 1, Title: "DSA Intro",
		Description: "Understanding Data Structures & Algorithms.",
		Tasks: []string{"What is DSA?", "Why DSA matters"},
	},
	{
		ID: "dsa2", Day: 2, Title: "Time Complexity Basics",
		Description: "Introduction to Big-O notation.",
		Tasks: []string{"Time complexity (Big-O)", "Best / Worst / Average case"},
	},
	{
		ID: "dsa3", Day: 3, Title: "Complexity Classes",
		Description: "Understanding O(1) and O(n).",
		Tasks: []string{"Focus: O(1)", "Focus: O(n)", "Goal: Understand efficiency"},
	},
	{
		ID: "dsa4", Day: 4, Title: "Quadratic & Logarithmic",
		Description: "Understanding O(n²) and O(log n).",
		Tasks: []string{"Focus: O(n²)", "Focus: O(log n)"},
	},
	{
		ID: "dsa5", Day: 5, Title: "Time Complexity Practice",
		Description: "Review and practice complexity analysis.",
		Tasks: []string{"Analyze simple loops", "Analyze nested loops", "Review all complexity classes"},
	},

	// PHASE 2: ARRAYS & STRINGS (Days 6-15)
	{
		ID: "dsa6", Day: 6, Title: "Array Traversal",
		Description: "Basics of iterating through arrays.",
		Tasks: []string{"Traversing arrays", "Practice problem 1", "Practice problem 2"},
	},
	{
		ID: "dsa7", Day: 7, Title: "Array Operations",
		Description: "Insertion and deletion in arrays.",
		Tasks: []string{"Insert elements", "Delete elements", "Practice problem 1"},
	},
	{
		ID: "dsa8", Day: 8, Title: "Min/Max in Arrays",
		Description: "Finding minimum and maximum values.",
		Tasks: []string{"Finding max value", "Finding min value", "Optimization techniques"},
	},
	{
		ID: "dsa9", Day: 9, Title: "Prefix Sum",
		Description: "Understanding the prefix sum technique.",
		Tasks: []string{"Prefix sum concept", "Range sum queries", "Practice problem"},
	},
	{
		ID: "dsa10", Day: 10, Title: "Sliding Window",
		Description: "Introduction to the sliding window pattern.",
		Tasks: []string{"Sliding window (basic)", "Fixed size window", "Practice problem"},
	},
	{
		ID: "dsa11", Day: 11, Title: "String Reversal",
		Description: "Basic string manipulation techniques.",
		Tasks: []string{"Reverse string", "In-place reversal", "Practice problem"},
	},
	{
		ID: "dsa12", Day: 12, Title: "Palindromes",
		Description: "Checking for palindromes in strings.",
		Tasks: []string{"Palindrome check", "Case sensitivity", "Practice problem"},
	},
	{
		ID: "dsa13", Day: 13, Title: "Character Frequency",
		Description: "Counting characters in strings.",
		Tasks: []string{"Character frequency", "Using arrays/maps for counting", "Practice problem"},
	},
	{
		ID: "dsa14", Day: 14, Title: "Anagrams",
		Description: "Checking if two strings are anagrams.",
		Tasks: []string{"Anagram check", "Sorting method", "Frequency map method"},
	},
	{
		ID: "dsa15", Day: 15, Title: "Arrays & Strings Review",
		Description: "Consolidating knowledge of arrays and strings.",
		Tasks: []string{"Review key concepts", "Solve mixed problems", "Goal: Problem-solving mindset"},
	},

	// PHASE 3: RECURSION & BIT BASICS (Days 16-20)
	{
		ID: "dsa16", Day: 16, Title: "Recursion Intro",
		Description: "Understanding the concept of recursion.",
		Tasks: []string{"What is recursion?", "Base case", "Recursive case"},
	},
	{
		ID: "dsa17", Day: 17, Title: "Standard Recursion Problems",
		Description: "Classic problems to practice recursion.",
		Tasks: []string{"Factorial", "Fibonacci sequence", "Tracing recursion stack"},
	},
	{
		ID: "dsa18", Day: 18, Title: "Recursion Deep Dive",
		Description: "Understanding how the recursion stack works.",
		Tasks: []string{"Recursion stack visualization", "Memory usage in recursion", "Goal: Think recursively"},
	},
	{
		ID: "dsa19", Day: 19, Title: "Bit Manipulation Basics",
		Description: "Introduction to bitwise operations.",
		Tasks: []string{"Bit manipulation basics", "AND, OR, XOR", "Left/Right Shift"},
	},
	{
		ID: "dsa20", Day: 20, Title: "Bitwise Tricks",
		Description: "Common bitwise hacks and problems.",
		Tasks: []string{"Even/odd using bits", "Check power of 2", "Practice problems"},
	},

	// PHASE 4: LINKED LIST (Days 21-25)
	{
		ID: "dsa21", Day: 21, Title: "Linked List Intro",
		Description: "Understanding Singly Linked Lists.",
		Tasks: []string{"Singly linked list structure", "Node definition", "Memory allocation"},
	},
	{
		ID: "dsa22", Day: 22, Title: "LL Operations",
		Description: "Basic operations on Linked Lists.",
		Tasks: []string{"Insert at beginning", "Insert at end", "Delete node"},
	},
	{
		ID: "dsa23", Day: 23, Title: "Reversing LL",
		Description: "Reversing a Linked List iteratively and recursively.",
		Tasks: []string{"Reverse linked list", "Iterative approach", "Recursive approach"},
	},
	{
		ID: "dsa24", Day: 24, Title: "Loop Detection",
		Description: "Detecting cycles in a Linked List.",
		Tasks: []string{"Detect loop (Floyd’s Cycle Finding)", "Understand pointers clearly"},
	},
	{
		ID: "dsa25", Day: 25, Title: "LL Review",
		Description: "Mastering dynamic data structures.",
		Tasks: []string{"Review LL operations", "Goal: Master dynamic data structures"},
	},

	// PHASE 5: STACK & QUEUE (Days 26-30)
	{
		ID: "dsa26", Day: 26, Title: "Stack Basics",
		Description: "Introduction to strict LIFO data structure.",
		Tasks: []string{"Stack push/pop", "Stack implementation (Array/LL)", "Stack applications"},
	},
	{
		ID: "dsa27", Day: 27, Title: "Stack Problems",
		Description: "Solving problems using Stacks.",
		Tasks: []string{"Balanced parentheses", "Infix to Postfix (concept)", "Postfix evaluation"},
	},
	{
		ID: "dsa28", Day: 28, Title: "Queue Basics",
		Description: "Introduction to FIFO data structure.",
		Tasks: []string{"Simple queue", "Enqueue/Dequeue", "Queue implementation"},
	},
	{
		ID: "dsa29", Day: 29, Title: "Advanced Queues",
		Description: "Circular Queues and Deques.",
		Tasks: []string{"Circular queue", "Deque (Double Ended Queue)", "Applications"},
	},
	{
		ID: "dsa30", Day: 30, Title: "Stack & Queue Review",
		Description: "Consolidating knowledge of linear data structures.",
		Tasks: []string{"Review Stack/Queue", "Compare usage scenarios", "Goal: Understand data flow"},
	},

	// PHASE 6: HASHING (Days 31-35)
	{
		ID: "dsa31", Day: 31, Title: "Hashing Intro",
		Description: "Understanding Hash Maps and Hash Tables.",
		Tasks: []string{"What is a Hash Map?", "Hash functions", "Collisions"},
	},
	{
		ID: "dsa32", Day: 32, Title: "Hash Map Operations",
		Description: "Using Hash Maps for efficient data access.",
		Tasks: []string{"Insert/Delete/Search", "Frequency counting", "Time complexity analysis"},
	},
	{
		ID: "dsa33", Day: 33, Title: "Duplicate Detection",
		Description: "Using Hashing to find duplicates.",
		Tasks: []string{"Duplicate detection", "First repeating element", "Practice problems"},
	},
	{
		ID: "dsa34", Day: 34, Title: "Two Sum Problem",
		Description: "Solving the classic Two Sum problem.",
		Tasks: []string{"Two-sum problem", "Naive solution vs Hash Map", "Optimization"},
	},
	{
		ID: "dsa35", Day: 35, Title: "Hashing Review",
		Description: "Important for interviews.",
		Tasks: []string{"Review Hashing", "Space-Time trade-off", "Goal: Optimize solutions"},
	},

	// PHASE 7: SEARCHING & SORTING (Days 36-40)
	{
		ID: "dsa36", Day: 36, Title: "Linear Search",
		Description: "Basic searching algorithm.",
		Tasks: []string{"Linear search mechanism", "Complexity analysis", "When to use"},
	},
	{
		ID: "dsa37", Day: 37, Title: "Binary Search",
		Description: "Efficient searching on sorted arrays.",
		Tasks: []string{"Binary search logic", "Iterative vs Recursive", "Complexity O(log n)"},
	},
	{
		ID: "dsa38", Day: 38, Title: "Basic Sorting",
		Description: "Simple sorting algorithms.",
		Tasks: []string{"Bubble sort", "Selection sort", "Insertion sort"},
	},
	{
		ID: "dsa39", Day: 39, Title: "Advanced Sorting Concepts",
		Description: "Introduction to efficient sorting.",
		Tasks: []string{"Merge sort (idea only)", "Divide and Conquer strategy", "Stability in sorting"},
	},
	{
		ID: "dsa40", Day: 40, Title: "Search & Sort Review",
		Description: "Understanding the logic behind algorithms.",
		Tasks: []string{"Review searching", "Review sorting", "Goal: Efficient thinking"},
	},

	// PHASE 8: TREES (Days 41-48)
	{
		ID: "dsa41", Day: 41, Title: "Tree Basics",
		Description: "Introduction to hierarchical data structures.",
		Tasks: []string{"Binary tree definition", "Root, Node, Leaf", "Levels and Height"},
	},
	{
		ID: "dsa42", Day: 42, Title: "Tree Properties",
		Description: "Understanding properties of Binary Trees.",
		Tasks: []string{"Height of tree", "Depth of node", "Full/Complete Binary Tree"},
	},
	{
		ID: "dsa43", Day: 43, Title: "Tree Traversal: Depth First",
		Description: "Inorder, Preorder, and Postorder traversals.",
		Tasks: []string{"Inorder traversal", "Preorder traversal", "Postorder traversal"},
	},
	{
		ID: "dsa44", Day: 44, Title: "Binary Search Tree (BST)",
		Description: "Introduction to BST properties.",
		Tasks: []string{"BST definition", "Search in BST", "Valid BST check"},
	},
	{
		ID: "dsa45", Day: 45, Title: "Tree Operations",
		Description: "Basic operations on trees.",
		Tasks: []string{"Insert in BST", "Find min/max in BST", "Leaf node count"},
	},
	{
		ID: "dsa46", Day: 46, Title: "Tree Applications",
		Description: "Real-world usage of trees.",
		Tasks: []string{"Trees in AI/ML", "Trees in Databases", "Expression trees"},
	},
	{
		ID: "dsa47", Day: 47, Title: "Tree Practice",
		Description: "Solving tree-based problems.",
		Tasks: []string{"Practice problem 1", "Practice problem 2", "Practice problem 3"},
	},
	{
		ID: "dsa48", Day: 48, Title: "Tree Review",
		Description: "Mastering hierarchical structures.",
		Tasks: []string{"Review Traversals", "Review BST", "Goal: Hierarchical thinking"},
	},

	// PHASE 9: GRAPHS (Days 49-55)
	{
		ID: "dsa49", Day: 49, Title: "Graph Intro",
		Description: "Introduction to Graph data structure.",
		Tasks: []string{"Graph definition", "Vertices and Edges", "Directed vs Undirected"},
	},
	{
		ID: "dsa50", Day: 50, Title: "Graph Representation",
		Description: "Adjacency Matrix and Adjacency List.",
		Tasks: []string{"Adjacency Matrix", "Adjacency List", "Pros and Cons"},
	},
	{
		ID: "dsa51", Day: 51, Title: "BFS",
		Description: "Breadth-First Search traversal.",
		Tasks: []string{"BFS algorithm", "Queue usage in BFS", "Level order traversal"},
	},
	{
		ID: "dsa52", Day: 52, Title: "DFS",
		Description: "Depth-First Search traversal.",
		Tasks: []string{"DFS algorithm", "Stack/Recursion in DFS", "Path finding"},
	},
	{
		ID: "dsa53", Day: 53, Title: "Graph Examples",
		Description: "Real-life applications of graphs.",
		Tasks: []string{"Social networks", "Maps/Navigation", "Web crawling"},
	},
	{
		ID: "dsa54", Day: 54, Title: "Graph Practice",
		Description: "Solving basic graph problems.",
		Tasks: []string{"Practice BFS", "Practice DFS", "Connected components"},
	},
	{
		ID: "dsa55", Day: 55, Title: "DSA Final Review",
		Description: "Wrapping up the DSA curriculum.",
		Tasks: []string{"Review Graph basics", "AI foundations check", "Goal: Relationship modeling"},
	},
}
