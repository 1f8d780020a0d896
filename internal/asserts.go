package internal

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Assert завершает процесс, если нарушен инвариант. Сообщение содержит tags и два ближайших кадра стека.
func Assert(condition bool, tags ...any) {
	if condition {
		return
	}
	var frames []string
	for skip := 1; skip <= 2; skip++ {
		if _, file, line, ok := runtime.Caller(skip); ok {
			frames = append(frames, fmt.Sprintf("%v:%v", file, line))
		}
	}
	logrus.WithField("frames", strings.Join(frames, " <- ")).
		Fatal(append([]any{"#ASSERTION_FAILED "}, tags...)...)
}
