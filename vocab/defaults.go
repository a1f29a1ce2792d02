package vocab

// DefaultWords returns the built-in word list used when no asset file is present
func DefaultWords() []string {
	return []string{
		"able", "about", "after", "again", "air", "all", "also", "and", "any", "are",
		"away", "back", "ball", "bed", "best", "big", "bird", "blue", "boat", "book",
		"box", "boy", "bring", "call", "came", "can", "car", "cat", "city", "cold",
		"come", "cup", "day", "dog", "door", "down", "draw", "each", "earth", "east",
		"eat", "end", "even", "eye", "face", "fall", "far", "fast", "fire", "fish",
		"five", "food", "foot", "form", "four", "free", "from", "game", "gave", "girl",
		"give", "gold", "good", "green", "grow", "hand", "hard", "have", "head", "hear",
		"help", "here", "high", "home", "horse", "hot", "house", "idea", "just", "keep",
		"kind", "king", "land", "large", "last", "learn", "light", "like", "line", "list",
		"long", "look", "made", "make", "many", "map", "mark", "milk", "moon", "more",
		"move", "music", "name", "near", "need", "new", "night", "note", "now", "old",
		"open", "order", "over", "page", "paper", "part", "plan", "play", "point", "rain",
		"read", "real", "red", "rest", "river", "road", "rock", "room", "run", "said",
		"same", "say", "sea", "seed", "ship", "show", "side", "sing", "size", "sky",
		"slow", "small", "snow", "song", "soon", "sound", "south", "star", "stay", "step",
		"stone", "story", "sun", "table", "take", "talk", "tell", "than", "that", "them",
		"then", "there", "these", "thing", "time", "tree", "true", "turn", "two", "under",
		"very", "walk", "want", "warm", "watch", "water", "wave", "way", "well", "went",
		"west", "what", "wheel", "when", "white", "whole", "wind", "word", "work", "world",
		"write", "year", "yes", "young",
	}
}
