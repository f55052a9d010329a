package config

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Window: Window{
			Width:    800,
			Height:   600,
			GridSize: 20,
			Title:    "Snaker",
		},
		Game: Game{
			MinSpeed:     5,
			MaxSpeed:     30,
			DefaultSpeed: 10,
			PlayerName:   "Player",
		},
		Resources: Resources{
			Directory:        "resources",
			DBName:           "snake_scores.db",
			PersistTimeoutMs: 250,
		},
		Audio: Audio{
			Directory: "sounds",
			Volume:    0.5,
			Sounds: map[string]string{
				"eat":        "eat.wav",
				"death":      "death.wav",
				"button":     "button.wav",
				"background": "background.wav",
			},
		},
		Quotes: Quotes{
			Items: []string{
				"Every ending is a new beginning.",
				"Rest well, the grid will wait for you.",
				"Hungry again tomorrow?",
				"The best snakes know when to stop.",
			},
			File:        "quotes_history.txt",
			DisplayTime: 2000,
			FontSize:    28,
		},
		UI: UI{
			Fonts: Fonts{
				Score:            20,
				GameOver:         24,
				LeaderboardTitle: 32,
				LeaderboardItem:  20,
			},
			Leaderboard: Leaderboard{
				Width:        400,
				Height:       460,
				XOffset:      200,
				YOffset:      50,
				TitleSpacing: 60,
				Spacing:      30,
				ItemPadding:  30,
				Opacity:      0.9,
				Limit:        100,
			},
			Dialog: Dialog{
				Width:         360,
				Height:        160,
				Text:          "Quit the game?",
				YesText:       "Yes",
				NoText:        "No",
				TextSize:      24,
				ButtonWidth:   100,
				ButtonHeight:  40,
				ButtonSpacing: 50,
				Opacity:       0.95,
			},
			KeyHelp: KeyHelp{
				Title: "Keys",
				Items: []string{
					"Arrows: steer",
					"K: pause / resume",
					"1 / 2: faster / slower",
					"3: restart after game over",
					"Space: music on / off",
					"S: show / hide this help",
					"Esc: quit",
					"Wheel: scroll leaderboard",
				},
				Width:     360,
				Height:    340,
				TitleSize: 28,
				TextSize:  20,
				Spacing:   30,
				Opacity:   0.9,
			},
			ScrollStep: 30,
			Colors: Colors{
				White:      RGB{255, 255, 255},
				Red:        RGB{220, 50, 50},
				DarkGreen:  RGB{0, 120, 0},
				LightGreen: RGB{120, 220, 120},
				DarkBG:     RGB{18, 24, 28},
				Gray:       RGB{128, 128, 128},
				Panel:      RGB{30, 30, 40},
			},
		},
	}
	cfg.Audio.Durations.Death = 1500
	return cfg
}
