// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

// middleLines are the phrase templates for lines three and four, keyed by
// the template family that uses them.
var middleLines = map[string][]string{
	"a": {"They'd {verb} and {verb2}", "Each day they would {verb}", "With passion they'd {verb}", "So skillfully they'd {verb}"},
	"b": {"Their {noun} would {verb}", "People watched them {verb}", "Everyone saw them {verb}", "The crowd would see them {verb}"},
	"c": {"They'd {verb} with such {noun}", "Their {verb} brought great {noun}", "Each {verb} caused much {noun}", "This {verb} sparked pure {noun}"},
	"d": {"They {verb} with great {noun}", "Their {verb} was quite {adj}", "Each {verb} brought them {noun}", "This {verb} made them {adj}"},
	"e": {"They could {verb} and {verb2}", "Their talent to {verb}", "Amazing ability to {verb}", "Such skill when they'd {verb}"},
	"f": {"They'd {verb} every {noun}", "Each {noun} they would {verb}", "Their {verb} made people {verb2}", "When they'd {verb}, crowds would {verb2}"},
}

// Line three and line four fill the same phrases from different word lists
// so the pair reads as a progression.
var (
	line3Bindings = Bindings{
		"verb":  FromCategory("verbs"),
		"verb2": FromCategory("line3_moves"),
		"noun":  FromCategory("line3_feelings"),
		"adj":   FromCategory("line3_qualities"),
	}
	line4Bindings = Bindings{
		"verb":  FromCategory("verbs"),
		"verb2": FromCategory("line4_reactions"),
		"noun":  FromCategory("line4_renown"),
		"adj":   FromCategory("line4_qualities"),
	}
)

func enhancedCatalog() catalog {
	bindings := Bindings{
		"adj1":        FromCategory("adjectives"),
		"adj2":        FromCategory("extra_adjectives"),
		"noun1":       FromCategory("nouns"),
		"noun2":       FromCategory("flourishes"),
		"verb1":       FromCategory("verbs"),
		"verb2":       FromCategory("reactions"),
		"place1":      FromRhyme(groupPlaces, 0),
		"place2":      FromRhyme(groupPlaces, 1),
		"name1":       FromRhyme(groupNames, 0),
		"name2":       FromRhyme(groupNames, 1),
		"end1":        FromRhyme(groupActions, 0),
		"end2":        FromRhyme(groupActions, 1),
		"rhyme_ew":    FromCategory("ew_rhymes"),
		"conclusion1": FromCategory("conclusions"),
	}
	for key, lines := range middleLines {
		phrases := make([]Template, 0, len(lines))
		for _, src := range lines {
			phrases = append(phrases, MustParseTemplate("middle_"+key, src))
		}
		bindings["line3_"+key] = FromPhrase(phrases, line3Bindings)
		bindings["line4_"+key] = FromPhrase(phrases, line4Bindings)
	}

	return catalog{
		templates: []string{
			"There once was a {adj1} {noun1} from {place1},\nWho {verb1} with incredible {noun2},\n{line3_a} {end1},\n{line4_a} {end2},\n{conclusion1} {place2}!",
			"A {adj1} {noun1} named {name1},\nWould {verb1} and cause such {noun2},\n{line3_b} {end1},\n{line4_b} {end2},\nWhat a sight in {name2}!",
			"In {place1} there lived a {noun1},\nWho {verb1} like a {adj1} {noun2},\n{line3_c} {end1},\n{line4_c} {end2},\nNow famous throughout {place2}!",
			"There's a {adj1} {noun1} I once knew,\nWhose {verb1} was quite something to {rhyme_ew},\n{line3_d} {end1},\n{line4_d} {end2},\nWhat else could that {noun1} do?",
			"A {noun1} from the town of {place1},\nHad a {adj1} and {adj2} {noun2},\n{line3_e} {end1},\n{line4_e} {end2},\nAnd that's how they conquered {place2}!",
			"Young {name1} was a {adj1} {noun1},\nTheir {verb1} would make people {verb2},\n{line3_f} {end1},\n{line4_f} {end2},\nSuch talent you rarely do see!",
		},
		generic: WordBank{
			"extra_adjectives": {"clever", "amazing", "wonderful", "peculiar", "remarkable"},
			"flourishes":       {"grace", "style", "flair", "skill", "charm", "wit", "pace"},
			"reactions":        {"laugh", "cheer", "stare", "smile", "gasp"},
			"ew_rhymes":        {"view", "new", "few", "crew", "grew", "flew", "knew", "threw", "drew", "stew"},
			"conclusions": {
				"What a sight to behold in",
				"They became quite famous in",
				"Now they're legend in",
				"Everyone talks about them in",
				"You can still see them in",
				"They're still remembered in",
				"People still speak of them in",
				"Their fame spread beyond",
			},
			"line3_moves":     {"dance", "prance", "bounce", "leap"},
			"line3_feelings":  {"joy", "pride", "glee", "delight"},
			"line3_qualities": {"grand", "fine", "bold", "bright"},
			"line4_reactions": {"cheer", "clap", "watch", "marvel"},
			"line4_renown":    {"fame", "praise", "awe", "wonder"},
			"line4_qualities": {"proud", "glad", "wise", "keen"},
		},
		profiles: Profiles{
			"cat": {
				"nouns":      {"cat", "kitten", "feline", "tabby", "tom"},
				"verbs":      {"purred", "meowed", "prowled", "pounced", "napped"},
				"adjectives": {"fluffy", "sneaky", "lazy", "curious", "playful"},
				"actions":    {"chase mice", "climb trees", "knock things down", "sleep all day"},
			},
			"dog": {
				"nouns":      {"dog", "puppy", "hound", "mutt", "pup"},
				"verbs":      {"barked", "wagged", "fetched", "dug", "chased"},
				"adjectives": {"loyal", "bouncy", "friendly", "slobbery", "energetic"},
				"actions":    {"fetch sticks", "dig holes", "chase squirrels", "guard the house"},
			},
			"programming": {
				"nouns":      {"coder", "programmer", "developer", "hacker", "geek"},
				"verbs":      {"coded", "debugged", "compiled", "refactored", "deployed"},
				"adjectives": {"clever", "caffeinated", "sleep-deprived", "brilliant", "obsessive"},
				"actions":    {"fix bugs", "write code", "drink coffee", "stay up late"},
			},
			"coffee": {
				"nouns":      {"barista", "coffee lover", "caffeine addict", "bean counter", "sipper"},
				"verbs":      {"brewed", "sipped", "gulped", "savored", "chugged"},
				"adjectives": {"jittery", "alert", "addicted", "energized", "buzzing"},
				"actions":    {"make lattes", "grind beans", "steam milk", "pull shots"},
			},
		},
		rhymes: RhymeGroups{
			groupPlaces: {
				{"Maine", "Spain", "lane", "brain", "rain", "pain", "gain", "plain", "chain", "strain"},
				{"Kent", "went", "sent", "bent", "tent", "spent", "lent", "meant", "rent", "dent"},
				{"York", "fork", "cork", "pork", "work", "quirk", "smirk", "lurk", "clerk", "perk"},
				{"Lee", "sea", "tree", "free", "spree", "glee", "key", "bee", "knee", "flee"},
				{"Dale", "tale", "pale", "scale", "whale", "trail", "sail", "nail", "rail", "hail"},
			},
			groupNames: {
				{"Sue", "Lou", "Drew", "Blue", "Hugh", "crew", "stew", "flew", "grew", "knew"},
				{"Kate", "late", "fate", "gate", "wait", "date", "rate", "great", "state", "mate"},
				{"Bill", "hill", "will", "still", "fill", "skill", "thrill", "chill", "mill", "drill"},
				{"Grace", "place", "space", "race", "face", "case", "pace", "trace", "base", "chase"},
			},
			groupActions: {
				{"dance", "prance", "chance", "glance", "stance", "trance", "lance", "France", "advance", "romance"},
				{"sing", "ring", "wing", "king", "thing", "bring", "spring", "sting", "swing", "fling"},
				{"play", "day", "way", "say", "may", "stay", "gray", "bay", "ray", "clay"},
				{"fight", "night", "light", "sight", "right", "bright", "flight", "might", "height", "tight"},
				{"run", "fun", "sun", "done", "won", "gun", "bun", "stun", "spun", "begun"},
			},
		},
		bindings: bindings,
		suggestions: []string{
			"cat", "dog", "programming", "coffee", "pizza", "music", "travel",
			"books", "dancing", "cooking", "gardening", "sports", "weather",
			"friendship", "technology", "art", "movies", "chocolate", "beach",
		},
		fallback: GenericProfile,
	}
}
