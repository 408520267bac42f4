package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("Branch checkout streams git output", func(t *testing.T) {
		mock := &mockStreamer{stderr: "Switched to branch 'develop'\n"}
		teardown := setupMockStreamer(t, mock)
		defer teardown()

		var stdout, stderr bytes.Buffer
		d := Dispatcher{Stdout: &stdout, Stderr: &stderr}
		if err := d.CheckoutBranch(ctx, "develop"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if diff := cmp.Diff([][]string{{"checkout", "develop", "--"}}, mock.calls); diff != "" {
			t.Errorf("Unexpected git calls (-want +got):\n%s", diff)
		}
		if stderr.String() != "Switched to branch 'develop'\n" {
			t.Errorf("Expected git stderr to be passed through, got %q", stderr.String())
		}
	})

	t.Run("Commit checkout failure keeps the cause", func(t *testing.T) {
		mock := &mockStreamer{err: errExit}
		teardown := setupMockStreamer(t, mock)
		defer teardown()

		err := Dispatcher{}.CheckoutCommit(ctx, "620a729")
		if !errors.Is(err, ErrCheckoutFailed) {
			t.Errorf("Expected ErrCheckoutFailed, got: %v", err)
		}
		if !errors.Is(err, errExit) {
			t.Errorf("Expected underlying error to be wrapped, got: %v", err)
		}
		if diff := cmp.Diff([][]string{{"checkout", "620a729", "--"}}, mock.calls); diff != "" {
			t.Errorf("Unexpected git calls (-want +got):\n%s", diff)
		}
	})
}

func TestDispatcher_RemoteBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("Names the remote to track", func(t *testing.T) {
		mock := &mockStreamer{}
		teardown := setupMockStreamer(t, mock)
		defer teardown()

		if err := (Dispatcher{}).CheckoutRemoteBranch(ctx, "up", "topic"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if diff := cmp.Diff([][]string{{"checkout", "--track", "up/topic", "--"}}, mock.calls); diff != "" {
			t.Errorf("Unexpected git calls (-want +got):\n%s", diff)
		}
	})

	t.Run("Failure keeps the cause", func(t *testing.T) {
		mock := &mockStreamer{err: errExit}
		teardown := setupMockStreamer(t, mock)
		defer teardown()

		err := Dispatcher{}.CheckoutRemoteBranch(ctx, "origin", "topic")
		if !errors.Is(err, ErrCheckoutFailed) || !errors.Is(err, errExit) {
			t.Errorf("Expected wrapped checkout failure, got: %v", err)
		}
	})
}

func TestCommandString(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "Branch or commit", args: CheckoutArgs("feature/x"), want: "git checkout feature/x --"},
		{name: "Tracking", args: TrackArgs("origin", "feature/x"), want: "git checkout --track origin/feature/x --"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CommandString(tc.args); got != tc.want {
				t.Errorf("CommandString = %q, want %q", got, tc.want)
			}
		})
	}
}
