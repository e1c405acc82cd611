package handlekit_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlekit"
	"github.com/dmitrymomot/handlekit/pkg/handle"
	"github.com/dmitrymomot/handlekit/pkg/logger"
)

func TestNewRunner(t *testing.T) {
	t.Parallel()

	t.Run("defaults to usernames mode", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{})
		require.NoError(t, err)
		require.NotNil(t, runner)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		_, err := handlekit.NewRunner(handle.Config{},
			handlekit.WithMode("handles"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, handlekit.ErrInvalidMode)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		_, err := handlekit.NewRunner(handle.Config{Profile: "narrow"})
		require.Error(t, err)
		assert.ErrorIs(t, err, handle.ErrInvalidProfile)
	})

	t.Run("rejects email modes without domains", func(t *testing.T) {
		t.Parallel()

		for _, mode := range []handlekit.Mode{handlekit.ModeEmails, handlekit.ModeBoth} {
			_, err := handlekit.NewRunner(handle.Config{}, handlekit.WithMode(mode))
			require.Error(t, err)
			assert.ErrorIs(t, err, handle.ErrNoDomains)
		}
	})

	t.Run("accepts email mode with domains", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{},
			handlekit.WithMode(handlekit.ModeEmails),
			handlekit.WithDomains("example.com"),
		)
		require.NoError(t, err)
		require.NotNil(t, runner)
	})
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	t.Run("generates usernames for one name", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{})
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), []string{"John Doe"})
		require.NoError(t, err)
		require.NotEmpty(t, results)

		values := make([]string, len(results))
		for i, res := range results {
			assert.Equal(t, "John Doe", res.Name)
			assert.Equal(t, handlekit.KindUsername, res.Kind)
			assert.Empty(t, res.Domain)
			values[i] = res.Value
		}
		assert.Equal(t, []string{"john.doe", "john_doe", "johndoe"}, values[:3])
	})

	t.Run("attributes results to the normalized name", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{MaxPerName: 1})
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), []string{"  John   Doe  "})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "John Doe", results[0].Name)
		assert.Equal(t, "john.doe", results[0].Value)
	})

	t.Run("attributes email results to their domain", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{MaxPerName: 2},
			handlekit.WithMode(handlekit.ModeEmails),
			handlekit.WithDomains(" @Example.COM "),
		)
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), []string{"John Doe"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "john.doe@Example.COM", results[0].Value)
		assert.Equal(t, handlekit.KindEmail, results[0].Kind)
		assert.Equal(t, "Example.COM", results[0].Domain)
		assert.Equal(t, "john_doe@Example.COM", results[1].Value)
	})

	t.Run("both mode yields usernames before emails per name", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{MaxPerName: 2},
			handlekit.WithMode(handlekit.ModeBoth),
			handlekit.WithDomains("example.com"),
		)
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), []string{"John Doe", "Jane Roe"})
		require.NoError(t, err)

		var got []string
		for _, res := range results {
			got = append(got, string(res.Kind)+":"+res.Value)
		}
		assert.Equal(t, []string{
			"username:john.doe",
			"username:john_doe",
			"email:john.doe@example.com",
			"email:john_doe@example.com",
			"username:jane.roe",
			"username:jane_roe",
			"email:jane.roe@example.com",
			"email:jane_roe@example.com",
		}, got)
	})

	t.Run("skips invalid names and keeps the rest", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		runner, err := handlekit.NewRunner(handle.Config{MaxPerName: 1},
			handlekit.WithLogger(log),
		)
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), []string{"Madonna", "John Doe"})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "john.doe", results[0].Value)
		assert.Contains(t, buf.String(), "skipping name")
		assert.Contains(t, buf.String(), "Madonna")
	})

	t.Run("empty batch yields empty results without error", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{})
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = runner.Run(ctx, []string{"John Doe"})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("attaches run id to batch logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextValue("run_id", handlekit.RunIDKey),
		)

		runner, err := handlekit.NewRunner(handle.Config{}, handlekit.WithLogger(log))
		require.NoError(t, err)

		_, err = runner.Run(context.Background(), []string{"John Doe"})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "run_id=")
	})
}

func TestRunnerConcurrency(t *testing.T) {
	t.Parallel()

	names := []string{"John Doe", "Jane Roe", "Bob Smith", "Alice Brown"}

	t.Run("parallel results keep input order", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{MaxPerName: 1},
			handlekit.WithConcurrency(3),
		)
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), names)
		require.NoError(t, err)

		var got []string
		for _, res := range results {
			got = append(got, res.Value)
		}
		assert.Equal(t, []string{"john.doe", "jane.roe", "bob.smith", "alice.brown"}, got)
	})

	t.Run("parallel and sequential runs agree", func(t *testing.T) {
		t.Parallel()

		sequential, err := handlekit.NewRunner(handle.Config{})
		require.NoError(t, err)
		parallel, err := handlekit.NewRunner(handle.Config{},
			handlekit.WithConcurrency(len(names)),
		)
		require.NoError(t, err)

		want, err := sequential.Run(context.Background(), names)
		require.NoError(t, err)
		got, err := parallel.Run(context.Background(), names)
		require.NoError(t, err)

		assert.Equal(t, want, got)
	})

	t.Run("parallel run skips invalid names", func(t *testing.T) {
		t.Parallel()

		runner, err := handlekit.NewRunner(handle.Config{MaxPerName: 1},
			handlekit.WithConcurrency(2),
		)
		require.NoError(t, err)

		results, err := runner.Run(context.Background(), []string{"Madonna", "John Doe"})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "john.doe", results[0].Value)
	})
}
