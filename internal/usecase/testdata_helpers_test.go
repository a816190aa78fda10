package usecase

import "github.com/riskibarqy/fpl-dashboard/internal/domain/bootstrap"

// element returns a complete bootstrap element; overrides replace or add keys.
func element(second string, teamID int, overrides map[string]any) map[string]any {
	out := map[string]any{
		"first_name":              "Test",
		"second_name":             second,
		"team":                    float64(teamID),
		"total_points":            float64(10),
		"goals_scored":            float64(1),
		"assists":                 float64(1),
		"clean_sheets":            float64(0),
		"now_cost":                float64(50),
		"minutes":                 float64(90),
		"yellow_cards":            float64(0),
		"red_cards":               float64(0),
		"form":                    "1.0",
		"bonus":                   float64(0),
		"event_points":            float64(2),
		"selected_by_percent":     "1.0",
		"influence":               "10.0",
		"creativity":              "10.0",
		"threat":                  "10.0",
		"expected_goals":          "0.50",
		"expected_assists":        "0.25",
		"expected_goals_conceded": "1.00",
		"saves":                   float64(0),
		"element_type":            float64(4),
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

func teamRecord(id int, name string) map[string]any {
	return map[string]any{"id": float64(id), "name": name, "short_name": name[:3]}
}

func elementTypes() []map[string]any {
	return []map[string]any{
		{"id": float64(1), "singular_name": "Goalkeeper"},
		{"id": float64(2), "singular_name": "Defender"},
		{"id": float64(3), "singular_name": "Midfielder"},
		{"id": float64(4), "singular_name": "Forward"},
	}
}

func samplePayload() bootstrap.Payload {
	return bootstrap.Payload{
		Teams: []map[string]any{teamRecord(1, "Arsenal"), teamRecord(2, "Chelsea"), teamRecord(3, "Everton")},
		Elements: []map[string]any{
			element("Saka", 1, map[string]any{"total_points": float64(180), "selected_by_percent": "45.5", "now_cost": float64(100), "element_type": float64(3), "minutes": float64(2700)}),
			element("Palmer", 2, map[string]any{"total_points": float64(200), "selected_by_percent": "60.1", "now_cost": float64(110), "element_type": float64(3), "goals_scored": float64(20)}),
			element("Raya", 1, map[string]any{"total_points": float64(140), "selected_by_percent": "20.0", "now_cost": float64(55), "element_type": float64(1), "saves": float64(80), "clean_sheets": float64(14)}),
			element("Havertz", 1, map[string]any{"total_points": float64(150), "selected_by_percent": "12.0", "now_cost": float64(80), "element_type": float64(4), "expected_goals": "12.5"}),
			element("Jackson", 2, map[string]any{"total_points": float64(130), "selected_by_percent": "bad", "now_cost": float64(75), "element_type": float64(4)}),
			element("Saliba", 1, map[string]any{"total_points": float64(160), "selected_by_percent": "30.0", "now_cost": float64(60), "element_type": float64(2), "clean_sheets": float64(15)}),
			element("Pickford", 3, map[string]any{"total_points": float64(120), "selected_by_percent": "8.0", "now_cost": float64(50), "element_type": float64(1), "saves": float64(120)}),
			element("Orphan", 99, nil),
		},
		ElementTypes: elementTypes(),
	}
}
