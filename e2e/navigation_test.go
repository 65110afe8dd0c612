//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNavigationWalksBackToCarrot(t *testing.T) {
	t.Parallel()
	tf := startProduce(t)
	defer tf.Cleanup()

	require.True(t, tf.Ready(), "dropdown should render")
	require.True(t, tf.SeePlain("Okra"), "disabled options are shown by default")

	// jump to the last row, then walk back over okra onto carrot
	require.NoError(t, tf.SendKeys(KeyEnd))
	require.True(t, tf.SeePlain("> ( ) Café au lait"), "end should highlight the last option")
	require.NoError(t, tf.SendKeys(KeyUp))
	require.True(t, tf.SeePlain(">   ( ) Okra"), "disabled options can be highlighted")
	require.NoError(t, tf.SendKeys(KeyUp))
	require.True(t, tf.SeePlain(">   ( ) Carrot"), "up should reach carrot")

	mark := tf.Mark()
	require.NoError(t, tf.Enter())
	exited, err := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
	require.NoError(t, err)
	require.True(t, tf.SeePlainAfter(mark, "carrot"))
}

func TestGroupsCannotBeSelected(t *testing.T) {
	t.Parallel()
	tf := startProduce(t, "--multiple")
	defer tf.Cleanup()

	require.True(t, tf.Ready(), "dropdown should render")
	require.NoError(t, tf.SendKeys("g"))
	require.True(t, tf.SeePlain("> ▾ Fruits"), "home should highlight the first group")

	require.NoError(t, tf.Select())
	time.Sleep(200 * time.Millisecond)
	require.NotContains(t, tf.SnapshotPlain(), "(1 selected)", "space on a group is ignored")
}
