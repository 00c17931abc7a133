// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"strings"
)

// Profiles maps a topic keyword to the words that override the generic bank
// for that topic.
type Profiles map[string]WordBank

// NormalizeTopic trims and lower-cases a free-form topic.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// Merge returns a copy of p with other's profiles added. Profiles in other
// replace those of the same topic.
func (p Profiles) Merge(other Profiles) Profiles {
	out := make(Profiles, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[NormalizeTopic(k)] = v
	}
	return out
}

// Validate checks every profile's categories.
func (p Profiles) Validate() error {
	for _, wb := range p {
		if err := wb.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GenericProfile synthesizes words for a topic without a profile. Every noun
// names the topic so the finished limerick always mentions it.
func GenericProfile(topic string) WordBank {
	return WordBank{
		"nouns": {
			topic + " lover",
			topic + " fan",
			topic + " buff",
			topic + " devotee",
			topic + " enthusiast",
		},
		"verbs":      {"worked", "played", "studied", "practiced", "enjoyed"},
		"adjectives": {"curious", "dedicated", "passionate", "clever", "enthusiastic"},
		"actions": {
			"study " + topic,
			"practice " + topic,
			"enjoy " + topic,
			"master " + topic,
		},
	}
}

// genericNouns keeps only the topic nouns of GenericProfile, for banks that
// have their own adjectives and verbs.
func genericNouns(topic string) WordBank {
	return WordBank{"nouns": GenericProfile(topic)["nouns"]}
}
