package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

func TestPackage(t *testing.T) {
	for _, code := range ftracker.Codes() {
		t.Run(code, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				pkg := Package(code)
				arity, ok := ftracker.Arity(code)
				require.True(t, ok)
				require.Len(t, pkg.Data, arity)

				_, err := ftracker.ReadPackage(pkg.Code, pkg.Data)
				require.NoError(t, err)
			}
		})
	}
}

func TestPackageRunningPace(t *testing.T) {
	for i := 0; i < 1000; i++ {
		pkg := Package("RUN")
		w, err := ftracker.ReadPackage(pkg.Code, pkg.Data)
		require.NoError(t, err)

		require.GreaterOrEqual(t, w.MeanSpeed(), 6.0)
		require.Less(t, w.MeanSpeed(), 18.1)
		require.Positive(t, w.SpentCalories())
	}
}

func TestUnknownCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := UnknownCode()
		assert.NotEmpty(t, code)
		assert.NotContains(t, ftracker.Codes(), code)
	}
}

func TestInt(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := Int(10, 20)
		require.GreaterOrEqual(t, n, 10)
		require.Less(t, n, 20)
	}
	assert.Equal(t, 7, Int(7, 7))
}
