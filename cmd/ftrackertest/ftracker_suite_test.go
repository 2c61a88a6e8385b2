package ftrackertest

import (
	"context"
	"regexp"

	"github.com/stretchr/testify/suite"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

var reportLineRe = regexp.MustCompile(`^Activity type: (Running|SportsWalking|Swimming); ` +
	`Duration: \d+\.\d{3} h; Distance: \d+\.\d{3} km; ` +
	`Mean speed: \d+\.\d{3} km/h; Calories burned: -?\d+\.\d{3}\.$`)

type FtrackerSuite struct {
	suite.Suite
}

func (suite *FtrackerSuite) SetupSuite() {
	if flagBinaryPath == "" {
		suite.T().Skip("-binary-path flag is not set")
	}
}

func (suite *FtrackerSuite) expectedSamples() []string {
	var lines []string
	for _, res := range ftracker.Report(context.Background(), ftracker.SamplePackages()) {
		suite.Require().NoError(res.Err)
		lines = append(lines, res.Info.Message())
	}
	return lines
}

func (suite *FtrackerSuite) TestSamples() {
	e := New(suite.T())
	p := RunBinary(e, nil)

	suite.Assert().Equalf(0, p.ExitCode(), "Процесс завершился с ненулевым статусом")
	suite.Assert().Equalf(suite.expectedSamples(), Lines(p.Stdout()),
		"Вывод программы не совпадает с ожидаемым отчетом по тренировкам")
}

func (suite *FtrackerSuite) TestReportWithWorkers() {
	e := New(suite.T())
	p := RunBinary(e, nil, "-workers", "3", "report")

	suite.Assert().Equalf(0, p.ExitCode(), "Процесс завершился с ненулевым статусом")
	suite.Assert().Equalf(suite.expectedSamples(), Lines(p.Stdout()),
		"Порядок строк отчета должен совпадать с порядком пакетов")
}

func (suite *FtrackerSuite) TestWorkersFromEnv() {
	e := New(suite.T())
	p := RunBinary(e, []string{"FTRACKER_WORKERS=2", "FTRACKER_LOG_LEVEL=debug"})

	suite.Assert().Equalf(0, p.ExitCode(), "Процесс завершился с ненулевым статусом")
	suite.Assert().Equal(suite.expectedSamples(), Lines(p.Stdout()))
	suite.Assert().Containsf(string(p.Stderr()), "run_id", "Отладочный лог должен содержать run_id")
}

func (suite *FtrackerSuite) TestRandom() {
	e := New(suite.T())
	p := RunBinary(e, nil, "random", "-n", "25")

	suite.Assert().Equalf(0, p.ExitCode(), "Процесс завершился с ненулевым статусом")

	lines := Lines(p.Stdout())
	suite.Assert().Len(lines, 25)
	for _, line := range lines {
		suite.Assert().Regexpf(reportLineRe, line, "Строка отчета не соответствует формату")
	}
}

func (suite *FtrackerSuite) TestUnknownCommand() {
	e := New(suite.T())
	p := RunBinary(e, nil, "jump")

	suite.Assert().Equalf(2, p.ExitCode(), "Неизвестная команда должна завершать процесс со статусом 2")
	suite.Assert().Empty(Lines(p.Stdout()))
	suite.Assert().Contains(string(p.Stderr()), "unknown command")
}
