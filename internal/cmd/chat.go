package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahla-io/dukkan/internal/policy"
	"github.com/sahla-io/dukkan/internal/session"
)

var chatRole string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat session on stdin/stdout",
	Long: `Starts an interactive conversation with the catalog assistant.

In-session commands:
  /role customer|staff   switch the declared role
  /reset                 clear the transcript (role persists)
  /report                print the sales report (staff only)
  /exit                  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := tracer.Start(cmd.Context(), "chat")
		defer span.End()

		_, _, router, err := buildRouter()
		if err != nil {
			return err
		}

		sess := session.New(policy.ParseRole(chatRole))
		fmt.Printf("dukkan %s — role: %s. Ask about our products (English or العربية). /exit to quit.\n",
			resolvedVersion(), sess.Role())

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			switch {
			case line == "/exit" || line == "/quit":
				return nil
			case line == "/reset":
				sess.Reset()
				fmt.Println("Conversation cleared.")
				continue
			case line == "/report":
				if sess.Role() != policy.RoleStaff {
					fmt.Println("The sales report is staff-only. Switch with /role staff.")
					continue
				}
				fmt.Println(router.Engine().Report(time.Now()))
				continue
			case strings.HasPrefix(line, "/role "):
				sess.SetRole(policy.ParseRole(strings.TrimPrefix(line, "/role ")))
				fmt.Printf("Role set to %s.\n", sess.Role())
				continue
			}

			fmt.Println(router.Process(ctx, sess, line))
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatRole, "role", "customer", "declared role (customer or staff)")
	rootCmd.AddCommand(chatCmd)
}
