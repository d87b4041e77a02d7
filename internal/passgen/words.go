package passgen

// words is the dictionary for memorable passwords: short, common, easy to
// type. Word lengths run from 2 to 8 characters so the length-targeted
// assembly in Memorable has room to maneuver.
var words = []string{
	"ace", "acre", "act", "air", "anchor", "angle", "ant", "apple",
	"arch", "arm", "arrow", "ash", "atom", "axe", "badge", "bale",
	"bank", "barn", "bat", "beach", "bead", "beam", "bean", "bear",
	"bell", "belt", "bench", "bird", "blade", "block", "blue", "boat",
	"bolt", "bone", "book", "boot", "bow", "box", "branch", "brick",
	"bridge", "brook", "brush", "bud", "bulb", "bull", "cab", "cake",
	"camp", "cane", "canyon", "cape", "card", "cart", "castle", "cat",
	"cave", "cedar", "chair", "chalk", "chart", "chest", "chief", "chin",
	"clam", "clay", "cliff", "cloud", "clover", "coal", "coast", "coin",
	"comet", "coral", "cork", "corn", "cove", "crab", "crane", "creek",
	"crow", "crown", "cub", "cup", "dart", "dawn", "deer", "delta",
	"den", "desk", "dew", "dime", "dish", "dock", "dome", "door",
	"dove", "drum", "duck", "dune", "dust", "eagle", "ear", "earth",
	"east", "echo", "edge", "eel", "egg", "elbow", "elk", "elm",
	"ember", "fawn", "fern", "field", "fig", "fin", "fir", "fire",
	"fish", "flag", "flame", "flint", "flute", "foam", "fog", "foot",
	"fork", "fort", "fox", "frog", "frost", "gate", "gem", "glen",
	"goat", "gold", "goose", "grape", "grass", "grove", "gull", "hail",
	"hand", "harbor", "hawk", "hay", "hazel", "heron", "hill", "hive",
	"holly", "hoof", "hook", "horn", "horse", "hut", "ice", "inlet",
	"iron", "island", "ivy", "jade", "jar", "jet", "kelp", "key",
	"king", "kite", "knob", "knot", "lake", "lamb", "lamp", "lark",
	"leaf", "ledge", "lemon", "lily", "lime", "lion", "lock", "log",
	"loom", "lotus", "lynx", "maple", "marsh", "mast", "meadow", "mill",
	"mint", "mist", "mole", "moon", "moss", "moth", "mouse", "mule",
	"nest", "net", "newt", "north", "nut", "oak", "oar", "oat",
	"ocean", "olive", "onion", "opal", "orchid", "otter", "owl", "ox",
	"palm", "path", "peach", "pear", "pearl", "pebble", "pine", "pond",
	"pony", "quail", "quartz", "quill", "rain", "raven", "reed", "reef",
	"ridge", "river", "robin", "rock", "root", "rose", "rust", "sage",
	"sail", "salt", "sand", "seal", "seed", "shell", "shore", "sky",
	"slate", "snow", "south", "spark", "spring", "spruce", "star", "stone",
	"storm", "stream", "summit", "sun", "swan", "tern", "thorn", "tide",
	"tiger", "torch", "trail", "tree", "trout", "tulip", "vale", "vine",
	"wave", "west", "whale", "wheat", "willow", "wind", "wolf", "wren",
}
