// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package popup

import "github.com/lovelace-tools/ll-popups/lib/doctree"

// sampleGrid builds a grid with two existing pop-up stacks: "Saloon"
// (area bound via a direct `area` field) and "Wohnzimmer" (area bound via
// a nested `target.area_id`), plus a non-pop-up card between them.
func sampleGrid() *doctree.Node {
	return doctree.Map(
		doctree.KV("type", doctree.String("grid")),
		doctree.KV("cards", doctree.Seq(
			saloonStack(),
			doctree.Map(
				doctree.KV("type", doctree.String("markdown")),
				doctree.KV("content", doctree.String("not a pop-up")),
			),
			wohnzimmerStack(),
		)),
	)
}

func saloonStack() *doctree.Node {
	return doctree.Map(
		doctree.KV("type", doctree.String("vertical-stack")),
		doctree.KV("cards", doctree.Seq(
			doctree.Map(
				doctree.KV("type", doctree.String("custom:bubble-card")),
				doctree.KV("card_type", doctree.String("pop-up")),
				doctree.KV("name", doctree.String("Saloon")),
				doctree.KV("hash", doctree.String("#saloon-popup")),
				doctree.KV("icon", doctree.String("mdi:glass-mug")),
			),
			doctree.Map(
				doctree.KV("type", doctree.String("entities")),
				doctree.KV("entities", doctree.Seq(
					doctree.Map(
						doctree.KV("entity", doctree.String("light.saloon")),
						doctree.KV("name", doctree.String("Saloon Licht")),
						doctree.KV("area", doctree.String("saloon")),
					),
				)),
			),
		)),
	)
}

func wohnzimmerStack() *doctree.Node {
	return doctree.Map(
		doctree.KV("type", doctree.String("vertical-stack")),
		doctree.KV("cards", doctree.Seq(
			doctree.Map(
				doctree.KV("type", doctree.String("custom:bubble-card")),
				doctree.KV("card_type", doctree.String("pop-up")),
				doctree.KV("name", doctree.String("Wohnzimmer")),
				doctree.KV("hash", doctree.String("#wohnzimmer-popup")),
			),
			doctree.Map(
				doctree.KV("type", doctree.String("tile")),
				doctree.KV("target", doctree.Map(
					doctree.KV("area_id", doctree.String("wohnzimmer")),
				)),
			),
		)),
	)
}

// placeholderTemplate uses every placeholder token.
func placeholderTemplate() *doctree.Node {
	return doctree.Map(
		doctree.KV("type", doctree.String("vertical-stack")),
		doctree.KV("cards", doctree.Seq(
			doctree.Map(
				doctree.KV("type", doctree.String("custom:bubble-card")),
				doctree.KV("card_type", doctree.String("pop-up")),
				doctree.KV("name", doctree.String("__AREA_NAME__")),
				doctree.KV("hash", doctree.String("__HASH__")),
				doctree.KV("icon", doctree.String("__ICON__")),
			),
			doctree.Map(
				doctree.KV("type", doctree.String("entities")),
				doctree.KV("entities", doctree.Seq(
					doctree.Map(
						doctree.KV("area", doctree.String("__AREA_ID__")),
						doctree.KV("name", doctree.String("Status")),
					),
					doctree.Map(
						doctree.KV("type", doctree.String("custom:some-card")),
						doctree.KV("target", doctree.Map(
							doctree.KV("area_id", doctree.String("__AREA_ID__")),
						)),
					),
				)),
			),
		)),
	)
}

// heuristicTemplate has no placeholder tokens; area binding relies
// entirely on the structural heuristic pass.
func heuristicTemplate() *doctree.Node {
	return doctree.Map(
		doctree.KV("type", doctree.String("vertical-stack")),
		doctree.KV("cards", doctree.Seq(
			doctree.Map(
				doctree.KV("type", doctree.String("custom:bubble-card")),
				doctree.KV("card_type", doctree.String("pop-up")),
			),
			doctree.Map(
				doctree.KV("type", doctree.String("entities")),
				doctree.KV("entities", doctree.Seq(
					doctree.Map(doctree.KV("area", doctree.String("dummy"))),
					doctree.Map(doctree.KV("target", doctree.Map(
						doctree.KV("area_id", doctree.String("dummy")),
					))),
				)),
			),
		)),
	)
}
