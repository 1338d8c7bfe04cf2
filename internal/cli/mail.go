package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/wire"
)

// MailCmd returns the mail command
func MailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Direct messages between users",
		Long: `Send and read direct messages. Messages are persistent in the local
database; reading a conversation marks the other party's messages as read.`,
	}

	cmd.AddCommand(mailSendCmd())
	cmd.AddCommand(mailInboxCmd())
	cmd.AddCommand(mailChatCmd())
	cmd.AddCommand(mailPartnersCmd())

	return cmd
}

func mailSendCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "send <body>",
		Short: "Send a message to another user",
		Long: `Send a direct message.

Examples:
  camptrack mail send "Roster for Pine Ridge is final" --to leader1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			ctx := NewContext()
			recipient, err := wire.UserService().GetUserByUsername(ctx, to)
			if err != nil {
				return fmt.Errorf("unknown recipient %q: %w", to, err)
			}

			messageID, err := wire.MessageService().SendMessage(ctx, cfg.CurrentUserID, recipient.ID, args[0])
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			fmt.Printf("✓ Message %d sent to %s\n", messageID, recipient.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient username")
	cmd.MarkFlagRequired("to")

	return cmd
}

func mailInboxCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "View your inbox",
		Long: `List messages addressed to you, newest first.

By default, shows only unread messages. Use --all to show all messages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			messages, err := wire.MessageService().Inbox(NewContext(), cfg.CurrentUserID, !all)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			if len(messages) == 0 {
				if all {
					fmt.Println("No messages")
				} else {
					fmt.Println("No unread messages")
				}
				return nil
			}

			fmt.Printf("Inbox for %s\n\n", cfg.CurrentUser)

			for _, msg := range messages {
				status := "✉"
				if msg.IsRead {
					status = "✓"
				}
				fmt.Printf("%s [%s] %s: %s\n", status, msg.CreatedAt, msg.SenderUsername, truncate(msg.Body, 60))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include read messages")

	return cmd
}

func mailChatCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "chat <username>",
		Short: "Read a conversation",
		Long: `Show one page of your conversation with another user, oldest first,
and mark their messages as read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			ctx := NewContext()
			other, err := wire.UserService().GetUserByUsername(ctx, args[0])
			if err != nil {
				return fmt.Errorf("unknown user %q: %w", args[0], err)
			}

			conv, err := wire.MessageService().Conversation(ctx, cfg.CurrentUserID, other.ID, page, pageSize)
			if err != nil {
				return fmt.Errorf("failed to load conversation: %w", err)
			}

			if conv.Total == 0 {
				fmt.Printf("No messages with %s yet\n", other.Username)
				return nil
			}

			fmt.Printf("Conversation with %s (page %d of %d, %d messages)\n\n",
				other.Username, conv.Page, conv.TotalPages, conv.Total)

			for _, msg := range conv.Messages {
				who := msg.SenderUsername
				if msg.SenderID == cfg.CurrentUserID {
					who = "you"
				}
				fmt.Printf("[%s] %s: %s\n", msg.CreatedAt, who, msg.Body)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number, newest page first")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Messages per page")

	return cmd
}

func mailPartnersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partners",
		Short: "List everyone you have exchanged messages with",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			partners, err := wire.MessageService().ChatPartners(NewContext(), cfg.CurrentUserID)
			if err != nil {
				return fmt.Errorf("failed to list chat partners: %w", err)
			}

			if len(partners) == 0 {
				fmt.Println("No conversations yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "USER\tROLE\tUNREAD\tLAST MESSAGE")
			fmt.Fprintln(w, "----\t----\t------\t------------")

			for _, p := range partners {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					p.PartnerUsername,
					p.PartnerRole,
					p.UnreadCount,
					truncate(p.LastMessage, 50),
				)
			}

			return w.Flush()
		},
	}
}
