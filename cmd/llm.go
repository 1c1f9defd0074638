package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/simplify/internal/llm"
	"github.com/abhisek/simplify/internal/problemgen"
	"github.com/abhisek/simplify/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM calls made for exercises and hints",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls with the fraction each one was about",
	RunE:  runLLMList,
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE:  runLLMView,
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE:  runLLMStats,
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (exercise-gen or hint)")
	llmListCmd.Flags().Bool("failed", false, "Only show failed calls")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}

func runLLMList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	purpose, _ := cmd.Flags().GetString("purpose")
	failedOnly, _ := cmd.Flags().GetBool("failed")

	s, err := openStoreFromCmd(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
	if err != nil {
		return fmt.Errorf("query LLM calls: %w", err)
	}

	row := "%-5s  %-19s  %-12s  %-14s  %-24s  %11s  %6s  %s\n"
	fmt.Printf(row, "ID", "Time", "Purpose", "Fraction", "Model", "Tokens", "Ms", "OK")
	fmt.Println(strings.Repeat("─", 100))

	shown := 0
	for _, e := range events {
		if failedOnly && e.Success {
			continue
		}
		shown++
		fmt.Printf(row,
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			eventSubject(e),
			truncate(e.Model, 24),
			fmt.Sprintf("%d/%d", e.InputTokens, e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			okMark(e.Success),
		)
	}
	if shown == 0 {
		fmt.Println("No LLM calls recorded.")
	}
	return nil
}

// eventSubject is the fraction a call was about. Exercise requests carry
// no subject until the model answers, so it is read from the reply.
func eventSubject(e store.LLMEvent) string {
	if e.Subject != "" {
		return e.Subject
	}
	if e.Purpose == llm.PurposeExerciseGen && e.Success {
		if f, _, err := problemgen.DecodeExercise([]byte(e.ResponseBody)); err == nil && f.Valid() {
			return f.String()
		}
	}
	return "-"
}

func okMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func runLLMView(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ID %q: %w", args[0], err)
	}

	s, err := openStoreFromCmd(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get LLM call: %w", err)
	}
	if e == nil {
		return fmt.Errorf("LLM call %d not found", id)
	}

	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format(timeLayout)},
		{"Purpose", e.Purpose},
		{"Fraction", eventSubject(*e)},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Result", okMark(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Printf("%-10s %s\n", f[0]+":", f[1])
	}

	printBody("PROMPT", e.RequestBody)
	printBody("REPLY", e.ResponseBody)
	return nil
}

func printBody(title, body string) {
	rule := strings.Repeat("─", 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Printf("\n%s\n%s\n%s\n%s\n", rule, title, rule, strings.TrimRight(body, "\n"))
}

func runLLMStats(cmd *cobra.Command, args []string) error {
	s, err := openStoreFromCmd(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	repo := s.EventRepo()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}
	if len(byPurpose) == 0 {
		fmt.Println("No LLM usage recorded yet.")
		return nil
	}
	printPurposeUsage(byPurpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}
	if len(byModel) > 0 {
		fmt.Println()
		printModelCost(byModel)
	}
	return nil
}

func printPurposeUsage(usage []store.LLMUsage) {
	rule := strings.Repeat("─", 72)
	row := "%-16s  %6d  %10d  %10d  %10d  %8s\n"

	fmt.Println("Usage by purpose")
	fmt.Println(rule)
	fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	fmt.Println(rule)

	var sum store.LLMUsage
	for _, u := range usage {
		fmt.Printf(row, u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, strconv.FormatInt(u.AvgLatencyMs, 10))
		sum.Calls += u.Calls
		sum.InputTokens += u.InputTokens
		sum.OutputTokens += u.OutputTokens
	}
	fmt.Println(rule)
	fmt.Printf(row, "TOTAL", sum.Calls, sum.InputTokens, sum.OutputTokens, sum.InputTokens+sum.OutputTokens, "")
}

func printModelCost(usage []store.LLMUsage) {
	rule := strings.Repeat("─", 72)
	row := "%-32s  %6s  %10s  %10s  %9s\n"

	fmt.Println("Estimated cost (USD)")
	fmt.Println(rule)
	fmt.Printf(row, "Model", "Calls", "Input", "Output", "Cost")
	fmt.Println(rule)

	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if price := llm.LookupCost(u.Model); price != nil {
			c := price.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Printf(row, truncate(u.Model, 32), strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost)
	}

	fmt.Println(rule)
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf(row, label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Printf("\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
