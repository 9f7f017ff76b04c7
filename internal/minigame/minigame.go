package minigame

// Minigame is a named elimination mechanic chosen at random each round
type Minigame struct {
	// Name is the display name, including its emoji suffix
	Name string

	// Emoji is the standalone emoji used in round titles
	Emoji string

	// Description is the flavor description; the flavor text generator
	// keys its templates off substrings of this field
	Description string

	// EliminationProbability is the per-participant chance, in (0, 1),
	// of becoming an elimination candidate this round
	EliminationProbability float64
}

// MaxEliminationsPerRound caps how many candidates actually get
// eliminated in one round, so a large lobby cannot be wiped out in a
// single pass.
const MaxEliminationsPerRound = 3

// Catalog is the fixed set of minigames a round is drawn from.
var Catalog = []Minigame{
	{
		Name:                   "Red Light, Green Light 🚦",
		Emoji:                  "\U0001F6A5",
		Description:            "Players must stay still when 'Red Light' is called.",
		EliminationProbability: 0.5,
	},
	{
		Name:                   "Glass Bridge 🌉",
		Emoji:                  "\U0001F309",
		Description:            "Choose the correct glass panels to cross safely.",
		EliminationProbability: 0.3,
	},
	{
		Name:                   "Random Mayhem ⚡",
		Emoji:                  "\U000026A1",
		Description:            "Unpredictable chaos ensues, testing players' luck.",
		EliminationProbability: 0.2,
	},
	{
		Name:                   "Simon Says 🎤",
		Emoji:                  "\U0001F3A4",
		Description:            "Players must follow the leader's commands precisely.",
		EliminationProbability: 0.25,
	},
	{
		Name:                   "Treasure Hunt 🗺️",
		Emoji:                  "\U0001F5FA",
		Description:            "Players search for hidden treasures under time pressure.",
		EliminationProbability: 0.35,
	},
	{
		Name:                   "Knife Throwing 🗡️",
		Emoji:                  "\U0001F5E1",
		Description:            "Players attempt to throw knives at a target with precision.",
		EliminationProbability: 0.4,
	},
	{
		Name:                   "Marbles Madness 🏀",
		Emoji:                  "\U0001F3C0",
		Description:            "Compete in a fast-paced marbles game where the last marble standing wins.",
		EliminationProbability: 0.3,
	},
	{
		Name:                   "Dollmaker 🪆",
		Emoji:                  "\U0001FA86",
		Description:            "Create dolls based on specific criteria; the least creative ones are eliminated.",
		EliminationProbability: 0.25,
	},
	{
		Name:                   "Heartbeat 💓",
		Emoji:                  "\U0001F493",
		Description:            "Players must keep their heartbeats steady; sudden changes lead to elimination.",
		EliminationProbability: 0.35,
	},
	{
		Name:                   "Tug of War 🤼",
		Emoji:                  "\U0001F93C",
		Description:            "Teams compete in a tug of war; the losing team faces elimination.",
		EliminationProbability: 0.5,
	},
	{
		Name:                   "Quiz Show 🧠",
		Emoji:                  "\U0001F4DA",
		Description:            "Answer rapid-fire trivia questions correctly to stay in the game.",
		EliminationProbability: 0.3,
	},
	{
		Name:                   "Paintball 🖌️",
		Emoji:                  "\U0001F58C",
		Description:            "Engage in a virtual paintball match; the last player unhit wins.",
		EliminationProbability: 0.4,
	},
	{
		Name:                   "Maze Runner 🌀",
		Emoji:                  "\U0001F300",
		Description:            "Navigate through a complex maze; failing to find the exit leads to elimination.",
		EliminationProbability: 0.35,
	},
	{
		Name:                   "Jigsaw Puzzle 🧩",
		Emoji:                  "\U0001F9E9",
		Description:            "Complete a jigsaw puzzle within the time limit to avoid elimination.",
		EliminationProbability: 0.25,
	},
	{
		Name:                   "Scavenger Hunt 🔍",
		Emoji:                  "\U0001F50D",
		Description:            "Find hidden items based on clues; failure to locate them results in elimination.",
		EliminationProbability: 0.3,
	},
}
