package curriculum

// aptitudeTrack is the quantitative-aptitude track.
var aptitudeTrack = []Topic{
	// PHASE 1: NUMBERS (Days 1-10)
	{
		ID: "apt1", Day: 1, Title: "Number Systems",
		Description: "Introduction to different types of numbers.",
		Tasks: []string{"Natural, Whole, Integers", "Prime vs Composite", "Rational vs Irrational"},
	},
	{
		ID: "apt2", Day: 2, Title: "Divisibility Rules",
		Description: "Rules for checking divisibility quickly.",
		Tasks: []string{"Rules for 2, 3, 4, 5", "Rules for 6, 8, 9, 11", "Practice problems"},
	},
	{
		ID: "apt3", Day: 3, Title: "LCM Basics",
		Description: "Least Common Multiple fundamentals.",
		Tasks: []string{"Finding LCM", "Prime factorization method", "Division method"},
	},
	{
		ID: "apt4", Day: 4, Title: "HCF Basics",
		Description: "Highest Common Factor fundamentals.",
		Tasks: []string{"Finding HCF", "Relationship between LCM & HCF", "HCF of fractions"},
	},
	{
		ID: "apt5", Day: 5, Title: "Remainders",
		Description: "Understanding remainder theorems.",
		Tasks: []string{"Basic remainder concept", "Negative remainders", "Practice problems"},
	},
	{
		ID: "apt6", Day: 6, Title: "Simplification",
		Description: "Solving complex expressions.",
		Tasks: []string{"BODMAS rule", "Approximation techniques", "Fractions simplification"},
	},
	{
		ID: "apt7", Day: 7, Title: "Surds & Indices",
		Description: "Laws of exponents and roots.",
		Tasks: []string{"Laws of indices", "Rules of surds", "Comparing surds"},
	},
	{
		ID: "apt8", Day: 8, Title: "Units Digit",
		Description: "Finding the last digit of powers.",
		Tasks: []string{"Cyclicity of numbers", "Finding units digit", "Practice power problems"},
	},
	{
		ID: "apt9", Day: 9, Title: "Numbers Practice 1",
		Description: "Consolidating number system concepts.",
		Tasks: []string{"Review Divisibility", "Review LCM/HCF", "Solve mixed problems"},
	},
	{
		ID: "apt10", Day: 10, Title: "Numbers Practice 2",
		Description: "Advanced number system problems.",
		Tasks: []string{"Advanced remainder problems", "Speed calculation drills", "Goal: Calculation speed"},
	},

	// PHASE 2: ARITHMETIC (Days 11-25)
	{
		ID: "apt11", Day: 11, Title: "Percentages Intro",
		Description: "Basics of percentage calculations.",
		Tasks: []string{"Percentage to fraction", "Fraction to percentage", "Percentage increase/decrease"},
	},
	{
		ID: "apt12", Day: 12, Title: "Percentage Problems",
		Description: "Solving percentage word problems.",
		Tasks: []string{"Population problems", "Election problems", "Consumption/Expenditure"},
	},
	{
		ID: "apt13", Day: 13, Title: "Profit & Loss",
		Description: "Understanding CP, SP, Profit, and Loss.",
		Tasks: []string{"Basic formulas", "Profit/Loss percentage", "Discount calculations"},
	},
	{
		ID: "apt14", Day: 14, Title: "Simple Interest",
		Description: "Calculating simple interest over time.",
		Tasks: []string{"SI formula", "Principal, Rate, Time", "Installment problems"},
	},
	{
		ID: "apt15", Day: 15, Title: "Compound Interest",
		Description: "Understanding the power of compounding.",
		Tasks: []string{"CI formula", "CI vs SI difference", "Half-yearly/Quarterly compounding"},
	},
	{
		ID: "apt16", Day: 16, Title: "Ratio & Proportion",
		Description: "Comparing quantities using ratios.",
		Tasks: []string{"Ratio properties", "Proportion basics", "Mean proportion"},
	},
	{
		ID: "apt17", Day: 17, Title: "Partnership",
		Description: "Ratio applications in business.",
		Tasks: []string{"Investment ratios", "Profit sharing", "Sleeping partners"},
	},
	{
		ID: "apt18", Day: 18, Title: "Averages",
		Description: "Finding the mean of datasets.",
		Tasks: []string{"Average formula", "Weighted average", "Average speed"},
	},
	{
		ID: "apt19", Day: 19, Title: "Mixtures & Alligations",
		Description: "Solving mixture problems.",
		Tasks: []string{"Rule of Alligation", "Mean value", "Removing/Replacing liquids"},
	},
	{
		ID: "apt20", Day: 20, Title: "Time & Work 1",
		Description: "Basics of work and efficiency.",
		Tasks: []string{"Unitary method", "Efficiency method", "Man-Days concept"},
	},
	{
		ID: "apt21", Day: 21, Title: "Time & Work 2",
		Description: "Advanced work problems.",
		Tasks: []string{"Pipes & Cisterns", "Work & Wages", "Alternate days work"},
	},
	{
		ID: "apt22", Day: 22, Title: "Time Speed Distance 1",
		Description: "Basics of motion equations.",
		Tasks: []string{"Relationship T, S, D", "Unit conversion", "Average speed"},
	},
	{
		ID: "apt23", Day: 23, Title: "Trains",
		Description: "Problems on trains crossing objects.",
		Tasks: []string{"Relative speed", "Crossing pole/platform", "Two trains crossing"},
	},
	{
		ID: "apt24", Day: 24, Title: "Boats & Streams",
		Description: "Upstream and downstream motion.",
		Tasks: []string{"Still water speed", "Stream speed", "Upstream/Downstream formulas"},
	},
	{
		ID: "apt25", Day: 25, Title: "Arithmetic Review",
		Description: "Consolidating arithmetic concepts.",
		Tasks: []string{"Review formulas", "Solve mixed arithmetic", "Goal: Solve faster"},
	},

	// PHASE 3: ALGEBRA (Days 26-30)
	{
		ID: "apt26", Day: 26, Title: "Algebraic Basics",
		Description: "Introduction to algebraic expressions.",
		Tasks: []string{"Variables & Constants", "Polynomial basics", "Degree of polynomial"},
	},
	{
		ID: "apt27", Day: 27, Title: "Linear Equations",
		Description: "Solving equations with one or two variables.",
		Tasks: []string{"Solving linear equations", "Word problems on numbers", "Age problems"},
	},
	{
		ID: "apt28", Day: 28, Title: "Quadratic Equations",
		Description: "Solving standard quadratic equations.",
		Tasks: []string{"Factorization method", "Quadratic formula", "Roots nature"},
	},
	{
		ID: "apt29", Day: 29, Title: "Inequalities",
		Description: "Understanding greater than/less than relationships.",
		Tasks: []string{"Linear inequalities", "Solving ranges", "Number line representation"},
	},
	{
		ID: "apt30", Day: 30, Title: "Algebraic Identities",
		Description: "Standard algebraic formulas.",
		Tasks: []string{"(a+b)^2, (a-b)^2", "Difference of squares", "Cubic identities"},
	},

	// PHASE 4: GEOMETRY & MENSURATION (Days 31-35)
	{
		ID: "apt31", Day: 31, Title: "Lines & Angles",
		Description: "Basics of geometry.",
		Tasks: []string{"Types of angles", "Parallel lines", "Transversals"},
	},
	{
		ID: "apt32", Day: 32, Title: "Triangles",
		Description: "Properties of triangles.",
		Tasks: []string{"Types of triangles", "Congruence & Similarity", "Pythagoras theorem"},
	},
	{
		ID: "apt33", Day: 33, Title: "Circles & Polygons",
		Description: "Properties of circles and n-sided shapes.",
		Tasks: []string{"Circle properties", "Tangents and Chords", "Polygon internal angles"},
	},
	{
		ID: "apt34", Day: 34, Title: "Mensuration 2D",
		Description: "Area and Perimeter calculations.",
		Tasks: []string{"Area of triangle/square", "Area of circle", "Perimeter formulas"},
	},
	{
		ID: "apt35", Day: 35, Title: "Mensuration 3D",
		Description: "Volume and Surface Area calculations.",
		Tasks: []string{"Volume of Cube/Cuboid", "Cylinder & Cone", "Sphere properties"},
	},

	// PHASE 5: DATA INTERPRETATION (Days 36-40)
	{
		ID: "apt36", Day: 36, Title: "Tables",
		Description: "Interpreting data from tables.",
		Tasks: []string{"Reading tables", "Calculation from rows/cols", "Percentage in tables"},
	},
	{
		ID: "apt37", Day: 37, Title: "Bar Graphs",
		Description: "Analyzing bar chart data.",
		Tasks: []string{"Single bar graph", "Double bar graph", "Trends analysis"},
	},
	{
		ID: "apt38", Day: 38, Title: "Line Graphs",
		Description: "Analyzing trends over time.",
		Tasks: []string{"Reading line points", "Slope interpretation", "Growth rate"},
	},
	{
		ID: "apt39", Day: 39, Title: "Pie Charts",
		Description: "Circular data representation.",
		Tasks: []string{"Degree to percentage", "Percentage to degree", "Sector analysis"},
	},
	{
		ID: "apt40", Day: 40, Title: "Caselets",
		Description: "Paragraph based data interpretation.",
		Tasks: []string{"Extracting data from text", "Organizing into table", "Solving questions"},
	},

	// PHASE 6: LOGICAL REASONING (Days 41-45)
	{
		ID: "apt41", Day: 41, Title: "Series & Coding",
		Description: "Identifying patterns in sequences.",
		Tasks: []string{"Number series", "Alphabet series", "Coding-Decoding"},
	},
	{
		ID: "apt42", Day: 42, Title: "Relations & Direction",
		Description: "Blood relations and spatial reasoning.",
		Tasks: []string{"Family tree analysis", "Direction sense test", "Distance calculation"},
	},
	{
		ID: "apt43", Day: 43, Title: "Seating Arrangement",
		Description: "Linear and circular arrangement problems.",
		Tasks: []string{"Linear seating", "Circular seating", "Facing center/outwards"},
	},
	{
		ID: "apt44", Day: 44, Title: "Syllogisms",
		Description: "Deductive reasoning using logic.",
		Tasks: []string{"Venn diagrams", "All/Some/None", "Drawing conclusions"},
	},
	{
		ID: "apt45", Day: 45, Title: "Final Aptitude Review",
		Description: "Ready for tests.",
		Tasks: []string{"Review all formulas", "Mock test practice", "Goal: Ready for placements"},
	},
}
