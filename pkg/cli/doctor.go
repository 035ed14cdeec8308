package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cloudsleuth/scout-mcp/pkg/creds"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// DoctorResult is the structured output of scout-mcp doctor. It can be
// serialised to JSON via --format=json or rendered as a table (default).
type DoctorResult struct {
	Profile       string `json:"profile,omitempty"`
	CredentialsOK bool   `json:"credentials_ok"`
	AccountID     string `json:"account_id,omitempty"`
	ARN           string `json:"arn,omitempty"`
	Error         string `json:"error,omitempty"`
}

// credentialChecker matches creds.Check so tests can substitute a fake.
type credentialChecker func(ctx context.Context, opts creds.Options) (*creds.Identity, error)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd() *cobra.Command {
	var format string
	var opts creds.Options

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check whether a generated command could run here",
		Long: `Resolve the AWS credentials a generated command refers to and report
whether they work, using STS GetCallerIdentity. ScoutSuite itself is never
invoked.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runDoctor(cmd.Context(), creds.Check, cmd.OutOrStdout(), format, opts)
			if err != nil {
				return err
			}
			if !result.CredentialsOK {
				return fmt.Errorf("credentials check failed")
			}
			return nil
		},
	}

	doctorCmd.Flags().StringVar(&format, "format", "table", `Output format: "table" or "json"`)
	doctorCmd.Flags().StringVar(&opts.Profile, "profile", "", "AWS profile to check (default: credential chain)")
	doctorCmd.Flags().StringVar(&opts.AccessKeyID, "access-key-id", "", "AWS access key ID to check")
	doctorCmd.Flags().StringVar(&opts.SecretAccessKey, "secret-access-key", "", "AWS secret access key to check")
	doctorCmd.Flags().StringVar(&opts.SessionToken, "session-token", "", "AWS session token to check")

	return doctorCmd
}

// runDoctor resolves the credentials, renders the result to w in the
// requested format, and returns it. The returned error covers only rendering
// failures; callers inspect result.CredentialsOK for the check outcome.
func runDoctor(ctx context.Context, check credentialChecker, w io.Writer, format string, opts creds.Options) (DoctorResult, error) {
	result := DoctorResult{Profile: opts.Profile}

	id, err := check(ctx, opts)
	if err != nil {
		result.Error = err.Error()
	} else {
		result.CredentialsOK = true
		result.AccountID = id.AccountID
		result.ARN = id.ARN
	}

	switch format {
	case "json":
		if err := json.NewEncoder(w).Encode(result); err != nil {
			return result, fmt.Errorf("encode doctor result: %w", err)
		}
	default:
		if err := renderDoctorTable(result, w); err != nil {
			return result, fmt.Errorf("render doctor table: %w", err)
		}
	}

	return result, nil
}

// renderDoctorTable writes the human-readable diagnostic output to w.
func renderDoctorTable(result DoctorResult, w io.Writer) error {
	profile := result.Profile
	if profile == "" {
		profile = "default chain"
	}

	data := pterm.TableData{
		{"Check", "Status", "Detail"},
	}
	if result.CredentialsOK {
		data = append(data,
			[]string{"Credentials", "OK", "Profile: " + profile},
			[]string{"STS Identity", "OK", "Account: " + result.AccountID},
		)
	} else {
		data = append(data,
			[]string{"Credentials", "FAIL", result.Error},
			[]string{"STS Identity", "FAIL", "skipped"},
		)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render(); err != nil {
		return err
	}

	if result.CredentialsOK {
		pterm.Success.WithWriter(w).Println("This machine can run the generated command.")
	} else {
		pterm.Error.WithWriter(w).Println("This machine cannot run the generated command as-is.")
	}

	return nil
}
