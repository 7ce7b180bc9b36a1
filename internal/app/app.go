// Package app builds the collaborator clients shared by the binaries. Every
// client is constructed once here and passed down explicitly.
package app

import (
	"log/slog"

	"shadowpulse/internal/config"
	"shadowpulse/pkg/llm"
	"shadowpulse/pkg/news"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/option"
)

// NewSearcher chains the configured news sources in a fixed order.
func NewSearcher(cfg *config.Config) *news.Chain {
	var sources []news.Searcher
	if key := cfg.Search.AlphaVantageKey; key != "" {
		sources = append(sources, news.NewAlphaVantageClient(key))
	}
	if key := cfg.Search.FinnhubKey; key != "" {
		sources = append(sources, news.NewFinnHubClient(key))
	}
	if key := cfg.Search.MassiveKey; key != "" {
		sources = append(sources, news.NewMassiveClient(key))
	}

	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name()
	}
	slog.Info("news sources configured", "sources", names)

	return news.NewChain(sources...)
}

func NewSummarizer(cfg *config.Config) llm.Summarizer {
	if cfg.LLM.Provider == config.ProviderAnthropic {
		return llm.NewAnthropicClient(cfg.LLM.AnthropicKey, anthropicoption.WithRequestTimeout(cfg.LLM.RequestTimeout))
	}
	return llm.NewOpenAIClient(cfg.LLM.OpenAIKey, openaioption.WithRequestTimeout(cfg.LLM.RequestTimeout))
}
