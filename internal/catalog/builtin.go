package catalog

// Default builds the built-in catalog of 28 careers.
func Default() (*Catalog, error) {
	return New(defaultCareers, WithSource("built-in"))
}

// DefaultInterests returns the interest categories offered by the questionnaire.
func DefaultInterests() Taxonomy {
	return Taxonomy{
		{Name: "Humanities & Social Sciences", Tags: []string{
			"English Literature / Language Arts",
			"World Languages (e.g., French, Spanish, Mandarin, Hindi)",
			"History",
			"Geography",
			"Global Politics / Civics",
			"Philosophy",
			"Psychology",
			"Social & Cultural Anthropology",
			"Economics",
			"Business Studies / Entrepreneurship",
			"Ethics / TOK (Theory of Knowledge)",
		}},
		{Name: "Sciences", Tags: []string{
			"Biology",
			"Chemistry",
			"Physics",
			"Environmental Systems & Societies / Environmental Science",
			"General Science / Integrated Science",
			"Sports, Exercise & Health Science",
			"Food Science / Food Technology",
		}},
		{Name: "Math & Technology", Tags: []string{
			"Mathematics",
			"Computer Science / Programming",
			"Design & Technology / Engineering",
		}},
		{Name: "Arts & Creativity", Tags: []string{
			"Visual Arts (drawing, painting, sculpture)",
			"Graphic Design / Digital Media",
			"Film / Media Studies",
			"Drama / Theatre",
			"Music",
			"Dance",
		}},
		{Name: "Applied & Vocational", Tags: []string{
			"Architecture / Interior Design",
			"Product Design / Industrial Design",
			"Health Science / Pre-Med",
			"Agriculture / Sustainable Farming",
			"Hospitality / Culinary Arts",
			"Engineering (General or Applied)",
		}},
		{Name: "Lifestyle & Physical Education", Tags: []string{
			"Physical Education / Sports Science",
			"Coaching & Athletics",
		}},
	}
}

// DefaultSkills returns the skill categories offered by the questionnaire.
func DefaultSkills() Taxonomy {
	return Taxonomy{
		{Name: "Thinking & Solving", Tags: []string{
			"Creative thinking",
			"Problem solving",
			"Strategic thinking",
			"Data analysis",
			"Decision-making",
		}},
		{Name: "People & Communication", Tags: []string{
			"Teamwork",
			"Leading others",
			"Explaining ideas",
			"Listening well",
			"Resolving conflict",
		}},
		{Name: "Hands-On", Tags: []string{
			"Building or fixing",
			"Cooking or crafting",
			"Working outdoors",
			"Using tools/machines",
		}},
		{Name: "Digital Skills", Tags: []string{
			"Coding",
			"Designing digitally",
			"Editing videos",
			"Working with data",
			"Troubleshooting tech",
		}},
		{Name: "Creative Skills", Tags: []string{
			"Drawing or painting",
			"Writing or storytelling",
			"Performing",
			"Music or audio",
			"Photography or video",
		}},
		{Name: "Purpose & Values", Tags: []string{
			"Helping people",
			"Supporting the planet",
			"Standing up for causes",
			"Understanding cultures",
			"Working with animals",
		}},
	}
}

var defaultCareers = []CareerRecord{
	{
		ID:          1,
		Title:       "Microfinance Specialist",
		Description: "Designs small loans and savings programs to support underserved communities.",
		Interests:   []string{"Economics", "Business Studies / Entrepreneurship", "Global Politics / Civics"},
		Skills:      []string{"Strategic thinking", "Data analysis", "Helping people", "Understanding cultures"},
		SDGs:        []int{1, 8, 10},
	},
	{
		ID:          2,
		Title:       "Agroecologist",
		Description: "Applies ecological science to farming for healthier food systems and better soil.",
		Interests:   []string{"Biology", "Environmental Systems & Societies / Environmental Science", "Agriculture / Sustainable Farming"},
		Skills:      []string{"Working outdoors", "Problem solving", "Supporting the planet", "Working with animals"},
		SDGs:        []int{2, 13, 15},
	},
	{
		ID:          3,
		Title:       "Biomedical Engineer",
		Description: "Develops medical devices like prosthetics, diagnostic tools, and wearable tech.",
		Interests:   []string{"Biology", "Physics", "Engineering (General or Applied)", "Design & Technology / Engineering"},
		Skills:      []string{"Problem solving", "Building or fixing", "Using tools/machines", "Helping people"},
		SDGs:        []int{3, 9, 10},
	},
	{
		ID:          4,
		Title:       "Digital Learning Developer",
		Description: "Creates educational games, apps, and platforms for digital learning.",
		Interests:   []string{"Computer Science / Programming", "Education", "Design & Technology / Engineering"},
		Skills:      []string{"Coding", "Designing digitally", "Writing or storytelling", "Explaining ideas"},
		SDGs:        []int{4, 9, 10},
	},
	{
		ID:          5,
		Title:       "Hydrologist",
		Description: "Studies the water cycle and helps improve clean water access and conservation.",
		Interests:   []string{"Environmental Systems & Societies / Environmental Science", "Geography", "Chemistry"},
		Skills:      []string{"Data analysis", "Working outdoors", "Supporting the planet", "Problem solving"},
		SDGs:        []int{6, 13, 14},
	},
	{
		ID:          6,
		Title:       "Wind Turbine Technician",
		Description: "Installs and maintains turbines that convert wind into clean electricity.",
		Interests:   []string{"Physics", "Engineering (General or Applied)", "Environmental Systems & Societies / Environmental Science"},
		Skills:      []string{"Building or fixing", "Working outdoors", "Using tools/machines", "Supporting the planet"},
		SDGs:        []int{7, 8, 13},
	},
	{
		ID:          7,
		Title:       "Waste Management Engineer",
		Description: "Designs systems for composting, recycling, and waste reduction.",
		Interests:   []string{"Environmental Systems & Societies / Environmental Science", "Chemistry", "Engineering (General or Applied)"},
		Skills:      []string{"Problem solving", "Strategic thinking", "Supporting the planet", "Building or fixing"},
		SDGs:        []int{11, 12, 13},
	},
	{
		ID:          8,
		Title:       "Circular Economy Analyst",
		Description: "Redesigns how companies produce and reuse materials to reduce waste.",
		Interests:   []string{"Business Studies / Entrepreneurship", "Environmental Systems & Societies / Environmental Science", "Economics"},
		Skills:      []string{"Strategic thinking", "Data analysis", "Supporting the planet", "Standing up for causes"},
		SDGs:        []int{9, 12, 13},
	},
	{
		ID:          9,
		Title:       "Sustainable Fashion Designer",
		Description: "Creates trendy clothing using ethical and eco-friendly materials.",
		Interests:   []string{"Visual Arts (drawing, painting, sculpture)", "Graphic Design / Digital Media", "Product Design / Industrial Design"},
		Skills:      []string{"Creative thinking", "Drawing or painting", "Supporting the planet", "Designing digitally"},
		SDGs:        []int{12, 13, 8},
	},
	{
		ID:          10,
		Title:       "Atmospheric Scientist",
		Description: "Studies weather and climate systems to understand and model change.",
		Interests:   []string{"Physics", "Geography", "Environmental Systems & Societies / Environmental Science"},
		Skills:      []string{"Data analysis", "Strategic thinking", "Supporting the planet", "Problem solving"},
		SDGs:        []int{13, 11, 17},
	},
	{
		ID:          11,
		Title:       "Carbon Accounting Analyst",
		Description: "Tracks emissions and helps companies reduce their carbon footprint.",
		Interests:   []string{"Economics", "Environmental Systems & Societies / Environmental Science", "Business Studies / Entrepreneurship"},
		Skills:      []string{"Data analysis", "Strategic thinking", "Supporting the planet", "Decision-making"},
		SDGs:        []int{12, 13, 9},
	},
	{
		ID:          12,
		Title:       "Marine Biologist",
		Description: "Studies ocean ecosystems and works to protect marine biodiversity.",
		Interests:   []string{"Biology", "Environmental Systems & Societies / Environmental Science", "Geography"},
		Skills:      []string{"Working outdoors", "Data analysis", "Supporting the planet", "Working with animals"},
		SDGs:        []int{14, 13, 15},
	},
	{
		ID:          13,
		Title:       "Urban City Planner",
		Description: "Designs greener, more connected cities using sustainable planning.",
		Interests:   []string{"Geography", "Architecture / Interior Design", "Environmental Systems & Societies / Environmental Science"},
		Skills:      []string{"Strategic thinking", "Designing digitally", "Problem solving", "Supporting the planet"},
		SDGs:        []int{11, 9, 13},
	},
	{
		ID:          14,
		Title:       "Resilience Engineer",
		Description: "Builds infrastructure that can withstand floods, heatwaves, and climate shocks.",
		Interests:   []string{"Engineering (General or Applied)", "Physics", "Environmental Systems & Societies / Environmental Science"},
		Skills:      []string{"Problem solving", "Strategic thinking", "Building or fixing", "Decision-making"},
		SDGs:        []int{9, 11, 13},
	},
	{
		ID:          15,
		Title:       "Disaster Relief Coordinator",
		Description: "Coordinates emergency response during disasters, from logistics to shelter.",
		Interests:   []string{"Global Politics / Civics", "Geography", "Business Studies / Entrepreneurship"},
		Skills:      []string{"Leading others", "Decision-making", "Helping people", "Resolving conflict"},
		SDGs:        []int{3, 11, 16},
	},
	{
		ID:          16,
		Title:       "Environmental Data Scientist",
		Description: "Uses data to predict and respond to environmental and climate issues.",
		Interests:   []string{"Computer Science / Programming", "Mathematics", "Environmental Systems & Societies / Environmental Science"},
		Skills:      []string{"Coding", "Data analysis", "Strategic thinking", "Supporting the planet"},
		SDGs:        []int{13, 14, 15},
	},
	{
		ID:          17,
		Title:       "Food Systems Analyst",
		Description: "Analyzes global food supply chains and suggests improvements for sustainability.",
		Interests:   []string{"Agriculture / Sustainable Farming", "Business Studies / Entrepreneurship", "Geography"},
		Skills:      []string{"Data analysis", "Strategic thinking", "Supporting the planet", "Standing up for causes"},
		SDGs:        []int{2, 12, 13},
	},
	{
		ID:          18,
		Title:       "Space Systems Engineer",
		Description: "Designs satellites and space tech used in communication and climate monitoring.",
		Interests:   []string{"Physics", "Engineering (General or Applied)", "Mathematics"},
		Skills:      []string{"Problem solving", "Strategic thinking", "Building or fixing", "Decision-making"},
		SDGs:        []int{9, 13, 17},
	},
	{
		ID:          19,
		Title:       "AI Engineer",
		Description: "Develops intelligent systems that power apps, automation, and innovation.",
		Interests:   []string{"Computer Science / Programming", "Mathematics", "Philosophy"},
		Skills:      []string{"Coding", "Problem solving", "Strategic thinking", "Data analysis"},
		SDGs:        []int{9, 8, 4},
	},
	{
		ID:          20,
		Title:       "Doctor",
		Description: "Diagnoses and treats patients, supporting health and well-being.",
		Interests:   []string{"Biology", "Chemistry", "Health Science / Pre-Med"},
		Skills:      []string{"Decision-making", "Helping people", "Listening well", "Problem solving"},
		SDGs:        []int{3, 5, 10},
	},
	{
		ID:          21,
		Title:       "Product Manager",
		Description: "Leads product teams from idea to launch across industries.",
		Interests:   []string{"Business Studies / Entrepreneurship", "Psychology", "Design & Technology / Engineering"},
		Skills:      []string{"Leading others", "Strategic thinking", "Decision-making", "Explaining ideas"},
		SDGs:        []int{8, 9, 12},
	},
	{
		ID:          22,
		Title:       "Graphic Designer",
		Description: "Creates visual content like logos, posters, and digital assets.",
		Interests:   []string{"Visual Arts (drawing, painting, sculpture)", "Graphic Design / Digital Media", "Design & Technology / Engineering"},
		Skills:      []string{"Creative thinking", "Drawing or painting", "Designing digitally", "Explaining ideas"},
		SDGs:        []int{8, 9, 12},
	},
	{
		ID:          23,
		Title:       "Journalist",
		Description: "Reports and writes news stories for TV, social media, or publications.",
		Interests:   []string{"English Literature / Language Arts", "Global Politics / Civics", "Psychology"},
		Skills:      []string{"Writing or storytelling", "Listening well", "Explaining ideas", "Standing up for causes"},
		SDGs:        []int{16, 10, 17},
	},
	{
		ID:          24,
		Title:       "Investment Banker",
		Description: "Advises companies on financial deals, growth, and capital strategies.",
		Interests:   []string{"Economics", "Business Studies / Entrepreneurship", "Mathematics"},
		Skills:      []string{"Strategic thinking", "Data analysis", "Decision-making", "Explaining ideas"},
		SDGs:        []int{8, 9, 17},
	},
	{
		ID:          25,
		Title:       "Game Designer",
		Description: "Builds interactive games for entertainment and education.",
		Interests:   []string{"Computer Science / Programming", "Visual Arts (drawing, painting, sculpture)", "Psychology"},
		Skills:      []string{"Creative thinking", "Coding", "Designing digitally", "Writing or storytelling"},
		SDGs:        []int{4, 8, 9},
	},
	{
		ID:          26,
		Title:       "Biotech Researcher",
		Description: "Develops breakthroughs like vaccines, clean meat, or gene therapy.",
		Interests:   []string{"Biology", "Chemistry", "Health Science / Pre-Med"},
		Skills:      []string{"Problem solving", "Data analysis", "Supporting the planet", "Helping people"},
		SDGs:        []int{3, 2, 9},
	},
	{
		ID:          27,
		Title:       "Neuroscientist",
		Description: "Studies the human brain to understand memory, emotions, and health.",
		Interests:   []string{"Biology", "Psychology", "Health Science / Pre-Med"},
		Skills:      []string{"Data analysis", "Problem solving", "Helping people", "Decision-making"},
		SDGs:        []int{3, 9, 10},
	},
	{
		ID:          28,
		Title:       "UX Designer",
		Description: "Designs interfaces that make tech easy, ethical, and human-centered.",
		Interests:   []string{"Psychology", "Graphic Design / Digital Media", "Computer Science / Programming"},
		Skills:      []string{"Creative thinking", "Designing digitally", "Listening well", "Problem solving"},
		SDGs:        []int{9, 10, 4},
	},
}
