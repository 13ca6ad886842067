// Package toast provides transient feedback notifications.
//
// A Toaster renders toasts into a shared container element of a live
// document (package dom). Each toast shows an icon, a message and a close
// button, and dismisses itself after a delay that depends on its type:
//
//	t := toast.New(doc, sched)
//	t.Show(ctx, "Saved.", toast.TypeSuccess)   // removed ~5.3s later
//	t.Show(ctx, "Heads up", toast.TypeInfo)    // removed ~10.3s later
//	t.Show(ctx, "Oops", "danger")              // alert icon, 5s delay
//
// # Markup
//
// The container is <div id="toastContainer" class="toast-container"> and is
// appended to the body the first time a toast is shown. Each toast is:
//
//	<div class="toast toast-<type>" data-toast-id="...">
//	    <svg class="toast-icon">...</svg>
//	    <span class="toast-message">message</span>
//	    <button class="toast-close" aria-label="Close"><svg>...</svg></button>
//	</div>
//
// # Dismissal
//
// Dismissing a toast (close click or auto-dismiss) adds the toast-exit
// class at once and removes the element after Config.ExitDelay so a CSS
// transition can play. Dismissal is idempotent, and a manual close cancels
// the pending auto-dismiss timer.
//
// # Message Escaping
//
// Messages are inserted as text by default. MessageMarkup inserts them as
// raw HTML and must only be used with trusted content.
//
// # Observers
//
// Lifecycle events (shown, exiting, removed) are delivered to Observers.
// The live preview server forwards them to browsers as "vango:toast"
// events; Metrics records them in Prometheus.
package toast
