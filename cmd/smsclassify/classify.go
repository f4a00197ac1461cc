package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tirasundara/sms-alert-classifier/internal/config"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/service"
)

func newClassifyCmd(cfg *config.Config) *cobra.Command {
	var body, sender string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single message and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if body == "" {
				return errors.New("message body is required, use --body")
			}

			ctx, log, err := setup(cmd, cfg)
			if err != nil {
				return err
			}

			svc := service.NewDefaultClassificationService()
			msg := domain.Message{ID: "1", Address: sender, Body: body}
			result := domain.Result{Message: msg, Classification: svc.Classify(body, sender)}

			if cfg.Speak {
				fx, err := startEffects(ctx, cfg, log)
				if err != nil {
					return fmt.Errorf("starting speech: %w", err)
				}
				if err := fx.handle(ctx, []domain.Result{result}); err != nil {
					_ = fx.close()
					return err
				}
				if err := fx.close(); err != nil {
					return fmt.Errorf("stopping speech: %w", err)
				}
			}

			var output []byte
			if cfg.Pretty {
				output, err = json.MarshalIndent(result.Classification, "", "  ")
			} else {
				output, err = json.Marshal(result.Classification)
			}
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Message body")
	cmd.Flags().StringVar(&sender, "sender", "", "Sender address, e.g. VM-HDFCBK")
	cmd.Flags().BoolVar(&cfg.Speak, "speak", false, "Run the notification and speech side effects")
	cmd.Flags().BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty print JSON output")

	return cmd
}
