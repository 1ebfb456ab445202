package dashboard

// dashboardTmpl is the static dashboard page. The page self-refreshes every
// 30 seconds; the generator rewrites the file on its own cadence.
const dashboardTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Agent Health Monitor</title>
<meta http-equiv="refresh" content="30">
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#0d1117;color:#c9d1d9;line-height:1.6}
.container{max-width:1400px;margin:0 auto;padding:20px}
header{background:linear-gradient(135deg,#161b22 0%,#0d1117 100%);border-bottom:1px solid #30363d;padding:40px 20px;text-align:center}
header h1{font-size:2.5rem;background:linear-gradient(135deg,#58a6ff,#a371f7);-webkit-background-clip:text;-webkit-text-fill-color:transparent;margin-bottom:10px}
header p{color:#8b949e;font-size:1.1rem}
.timestamp{text-align:center;padding:15px;color:#8b949e;font-size:.9rem;border-bottom:1px solid #21262d}
.stats-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:20px;padding:30px 0}
.stat-card{background:#161b22;border:1px solid #30363d;border-radius:12px;padding:24px;text-align:center}
.stat-card h3{font-size:2.5rem;margin-bottom:8px}
.stat-card p{color:#8b949e}
.stat-card.active{border-color:#3fb950}
.stat-card.active h3{color:#3fb950}
.stat-card.completed{border-color:#58a6ff}
.stat-card.completed h3{color:#58a6ff}
.stat-card.stuck{border-color:#f85149}
.stat-card.stuck h3{color:#f85149}
.section{margin:40px 0}
.section h2{font-size:1.5rem;margin-bottom:20px;padding-bottom:10px;border-bottom:2px solid #30363d}
.section.active h2{color:#3fb950;border-color:#3fb950}
.section.completed h2{color:#58a6ff;border-color:#58a6ff}
.section.stuck h2{color:#f85149;border-color:#f85149}
.agent-grid{display:grid;gap:15px}
.agent-card{background:#161b22;border:1px solid #30363d;border-radius:10px;padding:20px;display:grid;grid-template-columns:auto 1fr auto auto;align-items:center;gap:20px}
.agent-card:hover{border-color:#58a6ff;background:#1c2128}
.agent-icon{font-size:1.5rem;width:40px;text-align:center}
.agent-info h3{color:#c9d1d9;font-size:1rem;margin-bottom:4px}
.agent-info p{color:#8b949e;font-size:.85rem}
.agent-stat{text-align:center;font-size:.9rem}
.agent-stat .value{color:#58a6ff;font-weight:600;display:block}
.agent-stat .label{color:#6e7681;font-size:.75rem}
.status-badge{padding:6px 12px;border-radius:20px;font-size:.75rem;font-weight:600;text-transform:uppercase}
.status-badge.active{background:rgba(63,185,80,.2);color:#3fb950}
.status-badge.completed{background:rgba(88,166,255,.2);color:#58a6ff}
.status-badge.stuck{background:rgba(248,81,73,.2);color:#f85149}
.overflow{text-align:center;color:#6e7681;padding:20px}
.empty-state{text-align:center;padding:60px 20px;color:#8b949e}
footer{text-align:center;padding:40px;border-top:1px solid #21262d;color:#6e7681;font-size:.85rem}
@media (max-width:768px){.agent-card{grid-template-columns:1fr;text-align:center}}
</style>
</head>
<body>
<header>
<h1>Agent Health Monitor</h1>
<p>Real-time overview of all OpenClaw sub-agents</p>
</header>
<div class="timestamp">Last updated: {{.GeneratedAt}} (refreshes every 30s)</div>
<main class="container">
<div class="stats-grid">
<div class="stat-card active"><h3>{{len .Active}}</h3><p>🟢 Active Agents</p></div>
<div class="stat-card completed"><h3>{{.CompletedTotal}}</h3><p>✅ Completed</p></div>
<div class="stat-card stuck"><h3>{{len .Stuck}}</h3><p>⚠️ Stuck/Idle</p></div>
<div class="stat-card"><h3>{{.Total}}</h3><p>📊 Total Tracked</p></div>
</div>
{{if .Active}}
<div class="section active">
<h2>🟢 Active Agents</h2>
<div class="agent-grid">
{{range .Active}}{{template "agentCard" .}}{{end}}
</div>
</div>
{{end}}
{{if .Completed}}
<div class="section completed">
<h2>✅ Completed Agents</h2>
<div class="agent-grid">
{{range .Completed}}{{template "agentCard" .}}{{end}}
{{if .CompletedOverflow}}<p class="overflow">... and {{.CompletedOverflow}} more</p>{{end}}
</div>
</div>
{{end}}
{{if .Stuck}}
<div class="section stuck">
<h2>⚠️ Stuck/Need Attention</h2>
<div class="agent-grid">
{{range .Stuck}}{{template "agentCard" .}}{{end}}
</div>
</div>
{{end}}
{{if not .Total}}
<div class="empty-state">
<h2>No agents found</h2>
<p>Run some sub-agents to see them here</p>
</div>
{{end}}
</main>
<footer>
<p>agent-monitor | Auto-refreshes every 30 seconds</p>
</footer>
</body>
</html>
{{define "agentCard"}}<div class="agent-card">
<div class="agent-icon">{{.Icon}}</div>
<div class="agent-info">
<h3>{{.Label}}</h3>
<p>{{.Kind}} &bull; {{.Model}} &bull; Idle: {{.Idle}}</p>
</div>
<div class="agent-stat"><span class="value">{{.Tokens}}</span><span class="label">tokens</span></div>
<span class="status-badge {{.Status}}">{{.Status}}</span>
</div>
{{end}}`
