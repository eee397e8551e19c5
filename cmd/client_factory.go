package cmd

import (
	"fmt"

	"github.com/yourorg/notioncli/internal/config"
	"github.com/yourorg/notioncli/internal/notion"
)

var clientFactory = defaultClientFactory

func defaultClientFactory(profile string) (*notion.Client, error) {
	token, err := config.LoadToken(profile)
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(profile)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return notion.NewClient(notion.ClientConfig{
		Token:         token,
		NotionVersion: settings.NotionVersion,
	}), nil
}

func buildClient(profile string) (*notion.Client, error) {
	return clientFactory(profile)
}
