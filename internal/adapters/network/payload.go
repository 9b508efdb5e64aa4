// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import "github.com/janderssonse/pokedex/internal/domain"

type recordPayload struct {
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Height int `json:"height"`
	Weight int `json:"weight"`
}

type countPayload struct {
	Count int `json:"count"`
}

func (p recordPayload) toRecord() domain.Record {
	rec := domain.Record{
		Name:     p.Name,
		ImageURL: p.Sprites.FrontDefault,
		Height:   p.Height,
		Weight:   p.Weight,
		Types:    make([]string, 0, len(p.Types)),
		Stats:    make([]domain.Stat, 0, len(p.Stats)),
	}

	for _, t := range p.Types {
		rec.Types = append(rec.Types, t.Type.Name)
	}

	for _, s := range p.Stats {
		rec.Stats = append(rec.Stats, domain.Stat{Label: s.Stat.Name, Value: s.BaseStat})
	}

	return rec
}
