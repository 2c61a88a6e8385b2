package ftrackertest

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
)

const runProcessTimeout = 10 * time.Second

type Env struct {
	*fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	return &Env{
		EnvT:       fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		Ctx:        ctx,
		t:          t,
	}
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func BinaryPath(e *Env) string {
	return fixenv.Cache(e, flagBinaryPath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", flagBinaryPath)
		_, err := os.Stat(flagBinaryPath)
		if err != nil {
			return "", err
		}
		return flagBinaryPath, nil
	})
}

// RunBinary запускает ftracker с аргументами args и дожидается завершения
func RunBinary(e *Env, env []string, args ...string) *fork.Process {
	cacheKey := append(append([]string{"run"}, env...), args...)
	return fixenv.Cache(e, strings.Join(cacheKey, " "), nil, func() (*fork.Process, error) {
		ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
		defer cancel()

		p := fork.NewProcess(ctx, BinaryPath(e), fork.WithArgs(args...), fork.WithEnv(env...))

		e.Logf("Запускаю %q", p)
		if err := p.Run(ctx); err != nil {
			return nil, err
		}

		if out := p.Stderr(); len(out) > 0 {
			e.Logf("Получен STDERR лог процесса:\n\n%s", string(out))
		}
		return p, nil
	})
}

// Lines splits process output into non-empty lines
func Lines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
