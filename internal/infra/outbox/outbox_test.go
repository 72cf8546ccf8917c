//go:build unit

package outbox_test

import (
	"context"
	"testing"
	"time"

	"cast-dispatch/internal/infra/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("追加順に積まれる", func(t *testing.T) {
		q := outbox.NewQueue()
		q.Add(func(context.Context) {})
		q.Add(func(context.Context) {})
		assert.Equal(t, 2, q.Len())
	})

	t.Run("nil フックは無視する", func(t *testing.T) {
		q := outbox.NewQueue()
		q.Add(nil)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("Reset で積んだフックを破棄する", func(t *testing.T) {
		q := outbox.NewQueue()
		q.Add(func(context.Context) {})
		q.Add(func(context.Context) {})
		q.Reset()
		assert.Equal(t, 0, q.Len())
	})

	t.Run("トランザクション再試行では最後の試行分だけが実行される", func(t *testing.T) {
		// ロールバックされた試行のフックが commit 後に流れると、破棄済みの
		// ID を載せた通知が飛んでしまう。各試行冒頭の Reset がそれを防ぐ。
		q := outbox.NewQueue()
		var sent []int64

		attempt := func(id int64) {
			q.Reset()
			q.Add(func(context.Context) { sent = append(sent, id) })
		}
		attempt(101) // シリアライズ失敗でロールバックされた試行
		attempt(202) // commit に到達した試行

		runner := outbox.NewRunner(time.Second)
		runner.RunSync(context.Background(), q)

		assert.Equal(t, []int64{202}, sent)
	})
}

func TestRunnerRunSync(t *testing.T) {
	t.Run("フックを追加順に実行しキューを空にする", func(t *testing.T) {
		q := outbox.NewQueue()
		var order []int
		q.Add(func(context.Context) { order = append(order, 1) })
		q.Add(func(context.Context) { order = append(order, 2) })

		runner := outbox.NewRunner(time.Second)
		runner.RunSync(context.Background(), q)

		assert.Equal(t, []int{1, 2}, order)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("panic したフックが後続を止めない", func(t *testing.T) {
		q := outbox.NewQueue()
		var ran bool
		q.Add(func(context.Context) { panic("boom") })
		q.Add(func(context.Context) { ran = true })

		runner := outbox.NewRunner(time.Second)
		require.NotPanics(t, func() {
			runner.RunSync(context.Background(), q)
		})
		assert.True(t, ran)
	})

	t.Run("nil キューは何もしない", func(t *testing.T) {
		runner := outbox.NewRunner(time.Second)
		require.NotPanics(t, func() {
			runner.RunSync(context.Background(), nil)
		})
	})
}

func TestRunnerRunAfterCommit(t *testing.T) {
	t.Run("呼び出し元と別 goroutine で全フックを実行する", func(t *testing.T) {
		q := outbox.NewQueue()
		done := make(chan int, 2)
		q.Add(func(context.Context) { done <- 1 })
		q.Add(func(context.Context) { done <- 2 })

		runner := outbox.NewRunner(time.Second)
		runner.RunAfterCommit(q)

		var got []int
		for i := 0; i < 2; i++ {
			select {
			case v := <-done:
				got = append(got, v)
			case <-time.After(2 * time.Second):
				t.Fatal("hook did not run")
			}
		}
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("空キューは goroutine を起こさない", func(t *testing.T) {
		runner := outbox.NewRunner(time.Second)
		require.NotPanics(t, func() {
			runner.RunAfterCommit(outbox.NewQueue())
			runner.RunAfterCommit(nil)
		})
	})

	t.Run("フックにはタイムアウト付き context が渡る", func(t *testing.T) {
		q := outbox.NewQueue()
		gotDeadline := make(chan bool, 1)
		q.Add(func(ctx context.Context) {
			_, ok := ctx.Deadline()
			gotDeadline <- ok
		})

		runner := outbox.NewRunner(time.Second)
		runner.RunAfterCommit(q)

		select {
		case ok := <-gotDeadline:
			assert.True(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("hook did not run")
		}
	})
}
