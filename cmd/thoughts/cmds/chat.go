package cmds

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-go-golems/thoughtsitory/pkg/ai"
	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

var chatCmd = &cobra.Command{
	Use:   "chat <node-id>",
	Short: "Send a message to the AI within a node's conversation context",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message, _ := cmd.Flags().GetString("message")
		if strings.TrimSpace(message) == "" {
			cobra.CheckErr(fmt.Errorf("message cannot be empty"))
		}

		settings := ai.NewSettings()
		settings.APIKey = viper.GetString("openai-api-key")
		if settings.APIKey == "" {
			settings.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			settings.Model = model
		}
		if maxTokens, _ := cmd.Flags().GetInt("max-tokens"); maxTokens > 0 {
			settings.MaxTokens = maxTokens
		}
		if cmd.Flags().Changed("temperature") {
			settings.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		}
		if n, _ := cmd.Flags().GetInt("context-messages"); n > 0 {
			settings.ContextMessages = n
		}
		if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
			settings.Timeout = timeout
		}

		service, err := ai.NewService(settings)
		cobra.CheckErr(err)

		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		// generate first; on failure the node is left untouched
		gc := ai.BuildContext(node, settings.ContextMessages)
		reply, err := service.Generate(context.Background(), gc, strings.TrimSpace(message))
		cobra.CheckErr(err)

		node.AddMessage(nodes.RoleUser, strings.TrimSpace(message))
		node.AddMessage(nodes.RoleAssistant, reply)
		cobra.CheckErr(s.Save(node))

		fmt.Printf("AI reply in %q:\n\n%s\n", node.Title, reply)
	},
}

func init() {
	chatCmd.Flags().StringP("message", "m", "", "Message to send")
	_ = chatCmd.MarkFlagRequired("message")

	chatCmd.Flags().String("model", "", "Model name (default gpt-3.5-turbo)")
	chatCmd.Flags().Int("max-tokens", 0, "Maximum response tokens (default 1000)")
	chatCmd.Flags().Float64("temperature", 0.7, "Sampling temperature")
	chatCmd.Flags().Int("context-messages", 0, "Number of recent messages to include as context (default 10)")
	chatCmd.Flags().Duration("timeout", 30*time.Second, "Generation call timeout")
}
