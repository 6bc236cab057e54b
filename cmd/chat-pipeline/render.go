package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jan-server/services/chat-insights/internal/domain/analysis"
	"jan-server/services/chat-insights/internal/domain/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(22)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
)

func line(label string, value any) string {
	return labelStyle.Render(label) + countStyle.Render(fmt.Sprint(value))
}

func renderRun(snapshot *pipeline.Snapshot, output string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pipeline complete") + " " + idStyle.Render(snapshot.Version) + "\n")
	b.WriteString(line("conversations", snapshot.Stats.Conversations) + "\n")
	b.WriteString(line("rows loaded", snapshot.Stats.Loaded) + "\n")
	b.WriteString(line("duplicates dropped", snapshot.Stats.Duplicates) + "\n")
	b.WriteString(line("rows written", snapshot.Stats.Cleaned) + "\n")
	b.WriteString(line("policy", snapshot.Normalizer.Policy()) + "\n")
	b.WriteString(line("output", output))
	return b.String()
}

func renderCorpus(summary analysis.CorpusSummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Corpus summary") + "\n")
	b.WriteString(line("total conversations", summary.TotalConversations) + "\n")
	b.WriteString(line("total messages", summary.TotalMessages) + "\n")
	b.WriteString(line("unique articles", summary.UniqueArticles))
	return b.String()
}

func renderConversation(id string, summary analysis.ConversationSummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Conversation") + " " + idStyle.Render(id) + "\n")
	b.WriteString(line("article", summary.ArticleURL) + "\n")
	b.WriteString(line("agent_1 messages", summary.Agent1Messages) + "\n")
	b.WriteString(line("agent_2 messages", summary.Agent2Messages) + "\n")
	b.WriteString(line("agent_1 sentiment", summary.Agent1Sentiment) + "\n")
	b.WriteString(line("agent_2 sentiment", summary.Agent2Sentiment))
	return b.String()
}
