// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

func classicCatalog() catalog {
	return catalog{
		templates: []string{
			"There once was a {adjective} {noun} from {place},\nWho {verb} with incredible {noun2},\n{line3},\n{line4},\n{line5}",
			"A {adjective} {noun} named {name},\nWould {verb} and cause quite a {noun2},\n{line3},\n{line4},\n{line5}",
			"In {place} there lived a {noun},\nWho {verb} like a {adjective} {noun2},\n{line3},\n{line4},\n{line5}",
		},
		generic: WordBank{
			"adjectives": {"silly", "clever", "quirky", "witty", "funny", "strange", "odd", "bright", "swift", "bold"},
			"verbs":      {"danced", "sang", "jumped", "laughed", "played", "ran", "flew", "swam", "climbed", "wrote"},
			"places":     {"Maine", "Spain", "the lane", "Ukraine", "the plain", "the train", "the rain", "the brain"},
			"names":      {"Sue", "Lou", "Drew", "Blue", "Hugh", "Rue", "Crew", "Stew"},
			"flourishes": {"grace", "pace", "space", "case", "face"},
		},
		profiles: Profiles{
			"cat":         {"nouns": {"cat"}},
			"dog":         {"nouns": {"dog"}},
			"bird":        {"nouns": {"bird"}},
			"computer":    {"nouns": {"coder"}},
			"programming": {"nouns": {"programmer"}},
			"coffee":      {"nouns": {"barista"}},
			"food":        {"nouns": {"chef"}},
			"music":       {"nouns": {"musician"}},
			"art":         {"nouns": {"artist"}},
			"book":        {"nouns": {"reader"}},
			"travel":      {"nouns": {"traveler"}},
		},
		rhymes: RhymeGroups{},
		bindings: Bindings{
			"adjective": FromCategory("adjectives"),
			"noun":      FromCategory("nouns"),
			"noun2":     FromCategory("flourishes"),
			"verb":      FromCategory("verbs"),
			"place":     FromCategory("places"),
			"name":      FromCategory("names"),
			"line3":     Literal("They'd wiggle and giggle with glee"),
			"line4":     Literal("And dance by the old apple tree"),
			"line5":     Literal("What a sight it would be!"),
		},
		suggestions: []string{"cat", "dog", "bird", "programming", "coffee", "food", "music", "art", "book", "travel"},
		fallback:    genericNouns,
	}
}
