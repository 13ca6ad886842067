package server

// pageStyles positions the container and styles the four toast types.
const pageStyles = `
.toast-container { position: fixed; top: 1rem; right: 1rem; display: flex; flex-direction: column; gap: .5rem; z-index: 1000; }
.toast { display: flex; align-items: center; gap: .75rem; min-width: 16rem; padding: .75rem 1rem; border-radius: .5rem; background: #fff; box-shadow: 0 4px 12px rgba(0,0,0,.15); transition: opacity .3s, transform .3s; }
.toast-exit { opacity: 0; transform: translateX(100%); }
.toast-success { border-left: 4px solid #16a34a; }
.toast-error { border-left: 4px solid #dc2626; }
.toast-warning { border-left: 4px solid #d97706; }
.toast-info { border-left: 4px solid #2563eb; }
.toast-icon { width: 1.25rem; height: 1.25rem; flex-shrink: 0; }
.toast-message { flex: 1; }
.toast-close { border: 0; background: none; cursor: pointer; padding: 0; }
.toast-close svg { width: 1rem; height: 1rem; }
`

// pageScript keeps the container in sync with the server over /ws and
// forwards close clicks.
const pageScript = `
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var container = document.getElementById("toastContainer") || document.querySelector(".toast-container");

  function byId(id) {
    return container.querySelector('[data-toast-id="' + id + '"]');
  }

  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    var el = byId(msg.id);
    if (msg.kind === "removed") {
      if (el) el.remove();
    } else if (msg.html) {
      var tpl = document.createElement("template");
      tpl.innerHTML = msg.html;
      if (el) el.replaceWith(tpl.content);
      else container.appendChild(tpl.content);
    }
    document.dispatchEvent(new CustomEvent(msg.event, { detail: msg }));
  };

  document.addEventListener("click", function (ev) {
    var btn = ev.target.closest("[data-on-click]");
    if (!btn) return;
    var toast = btn.closest("[data-toast-id]");
    if (!toast) return;
    ws.send(JSON.stringify({
      action: "close",
      hid: btn.getAttribute("data-hid") || undefined,
      id: toast.getAttribute("data-toast-id")
    }));
  });
})();
`
