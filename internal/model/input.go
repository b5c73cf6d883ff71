package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Instance is the structured descriptor of a search instance
type Instance struct {
	N int `mapstructure:"n"`
}

func InstanceFromJson(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, err
	}

	var instance Instance
	if err := mapstructure.Decode(inputJson, &instance); err != nil {
		return Instance{}, err
	}

	return instance, nil
}
