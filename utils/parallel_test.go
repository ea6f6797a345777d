package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.viam.com/test"
	gutils "go.viam.com/utils"
)

func TestRunInParallel(t *testing.T) {
	wait100ms := func(ctx context.Context) error {
		gutils.SelectContextOrWait(ctx, 100*time.Millisecond)
		return ctx.Err()
	}

	elapsed, err := RunInParallel(context.Background(), []SimpleFunc{wait100ms, wait100ms})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, elapsed, test.ShouldBeLessThan, 200*time.Millisecond)
	test.That(t, elapsed, test.ShouldBeGreaterThan, 90*time.Millisecond)

	errFunc := func(ctx context.Context) error {
		return errors.New("bad")
	}

	elapsed, err = RunInParallel(context.Background(), []SimpleFunc{wait100ms, wait100ms, errFunc})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, elapsed, test.ShouldBeLessThan, 50*time.Millisecond)

	panicFunc := func(ctx context.Context) error {
		panic(1)
	}

	_, err = RunInParallel(context.Background(), []SimpleFunc{panicFunc})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGroupWorkParallel(t *testing.T) {
	// uneven division forces the last group to absorb the remainder
	totalSize := ParallelFactor*10 + 3
	visited := make([]int32, totalSize)
	numGroups := 0
	var doneCount int32
	var spanMismatches int32

	err := GroupWorkParallel(
		context.Background(),
		totalSize,
		func(groupSize int) {
			numGroups = groupSize
		},
		func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
			if to-from != groupSize {
				atomic.AddInt32(&spanMismatches, 1)
			}
			return func(memberNum, workNum int) {
					atomic.AddInt32(&visited[workNum], 1)
				}, func() {
					atomic.AddInt32(&doneCount, 1)
				}
		},
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, numGroups, test.ShouldEqual, ParallelFactor)
	test.That(t, spanMismatches, test.ShouldEqual, 0)
	test.That(t, doneCount, test.ShouldEqual, ParallelFactor)
	for workNum := 0; workNum < totalSize; workNum++ {
		test.That(t, visited[workNum], test.ShouldEqual, 1)
	}
}
