package audit

import (
	"reflect"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// containsSequence reports whether want appears in args as a contiguous
// subsequence of tokens.
func containsSequence(args, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for i := 0; i+len(want) <= len(args); i++ {
		if reflect.DeepEqual(args[i:i+len(want)], want) {
			return true
		}
	}
	return false
}

func containsToken(args []string, token string) bool {
	for _, a := range args {
		if a == token {
			return true
		}
	}
	return false
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name             string
		req              *AuditRequest
		expectContain    [][]string
		expectNotContain []string
	}{
		{
			name: "nil request yields only base tokens",
			req:  nil,
			expectContain: [][]string{
				{"aws", "--force", "--no-browser"},
			},
		},
		{
			name: "empty request yields only base tokens",
			req:  &AuditRequest{},
			expectContain: [][]string{
				{"aws", "--force", "--no-browser"},
			},
			expectNotContain: []string{
				"--max-workers", "--services", "--skip", "--profile",
				"--access-keys", "--access-key-id", "--secret-access-key",
				"--session-token", "--regions", "--exclude-regions",
				"--ip-ranges", "--ip-ranges-name-key",
			},
		},
		{
			name: "max workers is stringified",
			req:  &AuditRequest{MaxWorkers: intPtr(10)},
			expectContain: [][]string{
				{"--max-workers", "10"},
			},
		},
		{
			name: "non-positive max workers is still emitted",
			req:  &AuditRequest{MaxWorkers: intPtr(-1)},
			expectContain: [][]string{
				{"--max-workers", "-1"},
			},
		},
		{
			name: "services expand in input order",
			req:  &AuditRequest{Services: []string{"iam", "s3"}},
			expectContain: [][]string{
				{"--services", "iam", "s3"},
			},
			expectNotContain: []string{"--skip"},
		},
		{
			name: "empty skip list is treated as absent",
			req:  &AuditRequest{SkipServices: []string{}},
			expectNotContain: []string{"--skip"},
		},
		{
			name: "skip list expands in input order",
			req:  &AuditRequest{SkipServices: []string{"ec2", "rds", "route53"}},
			expectContain: [][]string{
				{"--skip", "ec2", "rds", "route53"},
			},
			expectNotContain: []string{"--services"},
		},
		{
			name: "access keys without profile",
			req: &AuditRequest{
				AccessKeyID:     strPtr("AKIAEXAMPLE"),
				SecretAccessKey: strPtr("secret"),
			},
			expectContain: [][]string{
				{"--access-key-id", "AKIAEXAMPLE"},
				{"--secret-access-key", "secret"},
			},
			expectNotContain: []string{"--profile"},
		},
		{
			name: "use_access_keys toggles on presence even when false",
			req:  &AuditRequest{UseAccessKeys: boolPtr(false)},
			expectContain: [][]string{
				{"--access-keys"},
			},
		},
		{
			name: "full_report does not change the flags",
			req:  &AuditRequest{FullReport: boolPtr(true)},
			expectContain: [][]string{
				{"aws", "--force", "--no-browser"},
			},
			expectNotContain: []string{"--full-report", "true"},
		},
		{
			name: "everything at once keeps fixed flag order",
			req: &AuditRequest{
				FullReport:      boolPtr(true),
				MaxWorkers:      intPtr(25),
				Services:        []string{"iam"},
				SkipServices:    []string{"ec2"},
				Profile:         strPtr("prod"),
				UseAccessKeys:   boolPtr(true),
				AccessKeyID:     strPtr("AKIA"),
				SecretAccessKey: strPtr("s3cr3t"),
				SessionToken:    strPtr("tok"),
				Regions:         strPtr("us-east-1,eu-west-1"),
				ExcludeRegions:  strPtr("cn-north-1"),
				IPRanges:        strPtr("/tmp/ranges.json"),
				IPRangesNameKey: strPtr("name"),
			},
			expectContain: [][]string{
				{"aws", "--force", "--no-browser", "--max-workers", "25",
					"--services", "iam", "--skip", "ec2", "--profile", "prod",
					"--access-keys", "--access-key-id", "AKIA",
					"--secret-access-key", "s3cr3t", "--session-token", "tok",
					"--regions", "us-east-1,eu-west-1",
					"--exclude-regions", "cn-north-1",
					"--ip-ranges", "/tmp/ranges.json",
					"--ip-ranges-name-key", "name"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := BuildArgs(DefaultProvider, tt.req)

			for _, want := range tt.expectContain {
				if !containsSequence(args, want) {
					t.Errorf("BuildArgs() = %v, missing sequence %v", args, want)
				}
			}
			for _, token := range tt.expectNotContain {
				if containsToken(args, token) {
					t.Errorf("BuildArgs() = %v, unexpected token %q", args, token)
				}
			}
		})
	}
}

func TestBuildArgsEmptyRequestIsExactlyBase(t *testing.T) {
	args := BuildArgs(DefaultProvider, &AuditRequest{})
	want := []string{"aws", "--force", "--no-browser"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("BuildArgs() = %v, want exactly %v", args, want)
	}
}

func TestBuildArgsIsDeterministic(t *testing.T) {
	req := &AuditRequest{
		MaxWorkers: intPtr(10),
		Services:   []string{"iam", "s3"},
		Profile:    strPtr("default"),
	}

	first := Advisory(DefaultTool, DefaultProvider, DefaultReportDir, req)
	second := Advisory(DefaultTool, DefaultProvider, DefaultReportDir, req)
	if first != second {
		t.Errorf("Advisory() is not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestCommandLine(t *testing.T) {
	req := &AuditRequest{Services: []string{"iam", "s3"}}
	got := CommandLine(DefaultTool, DefaultProvider, req)
	want := "scout aws --force --no-browser --services iam s3"
	if got != want {
		t.Errorf("CommandLine() = %q, want %q", got, want)
	}
}

func TestAdvisory(t *testing.T) {
	tests := []struct {
		name          string
		req           *AuditRequest
		expectContain []string
		expectAbsent  []string
	}{
		{
			name: "always carries command and report location",
			req:  &AuditRequest{},
			expectContain: []string{
				"scout aws --force --no-browser",
				"scoutsuite-report",
				"credentials",
			},
			expectAbsent: []string{"full report covers every scanned service"},
		},
		{
			name: "full report adds the advisory sentence",
			req:  &AuditRequest{FullReport: boolPtr(true)},
			expectContain: []string{
				"scoutsuite-report",
				"full report covers every scanned service",
			},
		},
		{
			name: "full report false omits the advisory sentence",
			req:  &AuditRequest{FullReport: boolPtr(false)},
			expectAbsent: []string{"full report covers every scanned service"},
		},
		{
			name: "nil request still carries the report location",
			req:  nil,
			expectContain: []string{
				"scout aws --force --no-browser",
				"scoutsuite-report",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Advisory(DefaultTool, DefaultProvider, DefaultReportDir, tt.req)

			for _, want := range tt.expectContain {
				if !strings.Contains(text, want) {
					t.Errorf("Advisory() missing %q in:\n%s", want, text)
				}
			}
			for _, absent := range tt.expectAbsent {
				if strings.Contains(text, absent) {
					t.Errorf("Advisory() unexpectedly contains %q in:\n%s", absent, text)
				}
			}
		})
	}
}
