package config

import (
	"encoding/json"
	"os"
)

type serverJSON struct {
	Address   *string `json:"address"`
	ModelPath *string `json:"model_path"`
}

func loadServerJSON(path string) (*serverJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg serverJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
