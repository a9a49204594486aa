package live

// ClientScript connects the page to /ws. It reports the viewport width, the
// natural height of every content wrapper and the reduced-motion preference,
// forwards clicks on accordion controls and applies attribute patches.
const ClientScript = `
(function() {
    'use strict';

    var ws = null;
    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var motion = window.matchMedia('(prefers-reduced-motion: reduce)');

    function heights() {
        var out = {};
        document.querySelectorAll('.accordion-content-wrapper').forEach(function(w) {
            if (w.firstElementChild) {
                out[w.id] = w.firstElementChild.scrollHeight;
            }
        });
        return out;
    }

    function send(msg) {
        if (ws && ws.readyState === WebSocket.OPEN) {
            ws.send(JSON.stringify(msg));
        }
    }

    function apply(patches) {
        patches.forEach(function(p) {
            var el = document.querySelector(p.target);
            if (el) {
                el.setAttribute(p.attr, p.value);
            }
        });
    }

    // A new session starts from the page's initial state, so the page is
    // reloaded once /healthz answers again.
    function waitForServer() {
        setTimeout(function() {
            fetch('/healthz', { cache: 'no-store' }).then(function(r) {
                if (r.ok) {
                    location.reload();
                } else {
                    backoff();
                }
            }, backoff);
        }, reconnectDelay);
    }

    function backoff() {
        reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
        waitForServer();
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
            send({
                type: 'hello',
                width: window.innerWidth,
                heights: heights(),
                reduced_motion: motion.matches,
                at: Date.now()
            });
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            switch (msg.type) {
                case 'patch':
                    apply(msg.patches || []);
                    break;
                case 'error':
                    console.error('[accordion]', msg.error);
                    break;
            }
        };

        ws.onclose = function() {
            waitForServer();
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    document.addEventListener('click', function(e) {
        var btn = e.target.closest('button[data-on-click]');
        if (!btn) {
            return;
        }
        var item = btn.closest('[data-accordion-item]');
        if (!item || item.getAttribute('data-is-disabled') === 'true') {
            return;
        }
        e.preventDefault();
        send({ type: 'click', item: item.getAttribute('data-accordion-item') });
    });

    window.addEventListener('resize', function() {
        send({ type: 'resize', width: window.innerWidth, heights: heights() });
    });

    motion.addEventListener('change', function() {
        send({ type: 'prefs', reduced_motion: motion.matches, at: Date.now() });
    });

    connect();
})();
`
