// Package vtest provides testing helpers for toast lifecycles.
//
// A Harness wires a fresh document, a virtual clock and a Toaster
// together so tests can show toasts, click them, move time forward and
// assert on the rendered HTML without sleeping.
//
// # Quick Start
//
//	func TestSavedToast(t *testing.T) {
//	    h := vtest.New(t)
//	    id := h.Show("Saved.", toast.TypeSuccess)
//
//	    h.ExpectContains(`class="toast toast-success"`)
//	    h.Advance(5 * time.Second)
//	    h.ExpectExiting(id)
//	    h.Advance(300 * time.Millisecond)
//	    h.ExpectCount(0)
//	}
//
// # Simulating Clicks
//
// Click dispatches a click on a toast's close button, exactly as a user
// click would:
//
//	h.Click(id)
//	h.ExpectExiting(id)
//
// # Render Assertions
//
//	h.ExpectContains("Saved.")
//	h.ExpectNotContains("toast-exit")
package vtest
