package main

import (
	"net/http"
)

func settingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(settingsHTML))
}

const settingsHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AR Palette Settings</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #1e3a8a 0%, #7c3aed 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container {
            max-width: 900px;
            margin: 0 auto;
        }
        .header {
            text-align: center;
            color: white;
            margin-bottom: 30px;
        }
        .header h1 {
            font-size: 2.2em;
            margin-bottom: 10px;
        }
        .table-card {
            background: white;
            border-radius: 12px;
            padding: 25px;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
            margin-bottom: 20px;
        }
        .table-card h2 {
            margin-bottom: 20px;
            color: #333;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th {
            text-align: left;
            padding: 12px;
            background: #f3f4f6;
            color: #666;
            font-weight: 600;
            text-transform: uppercase;
            font-size: 0.85em;
        }
        td {
            padding: 12px;
            border-bottom: 1px solid #e5e7eb;
        }
        td.help { color: #666; font-size: 0.9em; }
        input[type=number] { width: 110px; padding: 6px; }
        button {
            padding: 10px 20px;
            border: none;
            border-radius: 8px;
            background: #3b82f6;
            color: white;
            font-weight: 600;
            cursor: pointer;
            margin-right: 10px;
        }
        button.secondary { background: #10b981; }
        #status { margin-top: 12px; color: #666; }
        #status.error { color: #ef4444; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>AR Palette</h1>
            <p>Live palette parameters</p>
        </div>

        <div class="table-card">
            <h2>Parameters</h2>
            <table>
                <thead>
                    <tr><th>Parameter</th><th>Value</th><th>Help</th></tr>
                </thead>
                <tbody id="params">
                    <tr><td colspan="3" style="text-align: center; color: #999;">Loading...</td></tr>
                </tbody>
            </table>
        </div>

        <div class="table-card">
            <button id="apply">Apply</button>
            <button id="save" class="secondary">Save to storage</button>
            <div id="status"></div>
        </div>
    </div>

    <script>
        const ns = 'AR Palette';
        const integral = new Set(['bass_threshold', 'red_min', 'red_mid', 'red_max',
            'accent_r', 'accent_g', 'accent_b', 'accent_amount']);

        function setStatus(text, isError) {
            const el = document.getElementById('status');
            el.textContent = text;
            el.className = isError ? 'error' : '';
        }

        async function load() {
            try {
                const [help, state] = await Promise.all([
                    fetch('/json/cfginfo').then(r => r.json()),
                    fetch('/json/state').then(r => r.json()),
                ]);
                render(help, state[ns] || {});
            } catch (error) {
                setStatus('Failed to load: ' + error, true);
            }
        }

        function render(help, values) {
            const tbody = document.getElementById('params');
            tbody.innerHTML = help.map(entry => {
                const key = entry.key.slice(ns.length + 1);
                const step = integral.has(key) ? '1' : '0.01';
                const bounds = integral.has(key) ? 'min="0" max="255"' : '';
                const value = values[key] !== undefined ? values[key] : '';
                return ` + "`" + `
                    <tr>
                        <td><strong>${key}</strong></td>
                        <td><input type="number" data-key="${key}" step="${step}" ${bounds} value="${value}"></td>
                        <td class="help">${entry.help}</td>
                    </tr>
                ` + "`" + `;
            }).join('');
        }

        async function apply() {
            const patch = {};
            document.querySelectorAll('input[data-key]').forEach(input => {
                if (input.value !== '') patch[input.dataset.key] = Number(input.value);
            });
            const response = await fetch('/json/state', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({[ns]: patch}),
            });
            if (!response.ok) {
                const body = await response.json();
                setStatus(body.message, true);
                return false;
            }
            setStatus('Applied');
            return true;
        }

        async function save() {
            if (!await apply()) return;
            const response = await fetch('/cfg/save', {method: 'POST'});
            setStatus(response.ok ? 'Saved' : 'Save failed', !response.ok);
        }

        document.getElementById('apply').addEventListener('click', apply);
        document.getElementById('save').addEventListener('click', save);
        load();
    </script>
</body>
</html>`
