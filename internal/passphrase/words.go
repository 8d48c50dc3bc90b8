package passphrase

// defaultAdjectives is the built-in adjective list. Entries are unique so
// every word has the same chance of being picked.
var defaultAdjectives = []string{
	"Brave", "Calm", "Smart", "Mighty", "Happy", "Lucky", "Quick", "Bright", "Kind", "Bold",
	"Wise", "Strong", "Gentle", "Joyful", "Friendly", "Clever", "Shiny", "Brilliant", "Swift", "Cheerful",
	"Noble", "Alert", "Graceful", "Peaceful", "Proud", "Vivid", "Radiant", "Daring", "Energetic", "Lively",
	"Honest", "Brisk", "Creative", "Braveheart", "Fearless", "Courageous", "Playful", "Curious", "Inventive", "Vigorous",
	"Gallant", "Heroic", "Optimistic", "Steady", "Dynamic", "Elegant", "Fierce", "Glorious", "Hopeful", "Intrepid",
	"Jovial", "Keen", "Luminous", "Magnetic", "Passionate", "Resolute", "Serene", "Spirited", "Tenacious", "Valiant",
	"Ambitious", "Astute", "Bubbly", "Charming", "Dazzling", "Eager", "Exuberant", "Fanciful", "Sunny", "Gleaming",
	"Gracious", "Humble", "Imaginative", "Industrious", "Merry", "Kindhearted", "Majestic", "Meticulous", "Nimble", "Observant",
	"Patient", "Perceptive", "Plucky", "Resourceful", "Sensible", "Sincere", "Sociable", "Stalwart", "Steadfast", "Strong-willed",
	"Talented", "Thoughtful", "Trustworthy", "Upbeat", "Versatile", "Vivacious", "Warmhearted", "Witty", "Zealous", "Zesty",
}

// defaultNouns is the built-in noun list. Entries are unique.
var defaultNouns = []string{
	"Tiger", "Eagle", "Moon", "River", "Star", "Cloud", "Stone", "Phoenix", "Shadow", "Lion",
	"Falcon", "Wolf", "Dragon", "Sun", "Mountain", "Ocean", "Sky", "Storm", "Leaf", "Fire",
	"Crystal", "Diamond", "Comet", "Sparrow", "Hawk", "Bear", "Panther", "Cheetah", "Fox", "Raven",
	"Oak", "Pine", "Willow", "Rose", "Lotus", "Orchid", "Daisy", "Maple", "Cedar", "Ivy",
	"Thunder", "Lightning", "Snow", "Rain", "Wind", "Wave", "Canyon", "Valley", "Desert", "Meadow",
	"Horizon", "Galaxy", "Planet", "Meteor", "Nova", "Cosmos", "Aurora", "Orbit", "Tornado", "Volcano",
	"Harbor", "Spirit", "Wolfpack", "Tigerclaw", "Eagleeye", "Nightfall", "Sunrise", "Sunset", "Frost", "Blaze",
	"Echo", "Myst", "Stoneheart", "Iron", "Silver", "Gold", "Bronze", "Obsidian", "Onyx", "Pearl",
	"Sapphire", "Ruby", "Emerald", "Topaz", "Glacier", "Quartz", "Meteorite", "Tundra", "Cyclone", "Zephyr",
	"Breeze", "Thunderbolt", "Hurricane", "Avalanche", "Monsoon", "Twilight", "Starlight", "Moonlight", "Daybreak", "Nightshade",
}

// defaultSymbols is the symbol set both symbol tokens are drawn from.
var defaultSymbols = []string{"!", "@", "#", "$", "%", "&", "*"}

// Adjectives returns a copy of the built-in adjective list.
func Adjectives() []string {
	return append([]string(nil), defaultAdjectives...)
}

// Nouns returns a copy of the built-in noun list.
func Nouns() []string {
	return append([]string(nil), defaultNouns...)
}

// Symbols returns a copy of the built-in symbol set.
func Symbols() []string {
	return append([]string(nil), defaultSymbols...)
}
