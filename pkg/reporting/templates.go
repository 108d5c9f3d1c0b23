/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML templates for the SLG Learner summary report. Provides a
beautiful, modern, and responsive page with run statistics and per-class tables.
*/

package reporting

// summaryTemplate is the main HTML template for the run summary report
const summaryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - SLG Learner Report</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        .header {
            background: rgba(255, 255, 255, 0.95);
            backdrop-filter: blur(10px);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.5rem;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .header p {
            color: #718096;
            font-size: 1.1rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }

        .stat-card {
            background: rgba(255, 255, 255, 0.95);
            backdrop-filter: blur(10px);
            border-radius: 15px;
            padding: 25px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .stat-card .value {
            font-size: 2rem;
            font-weight: 700;
            color: #4a5568;
        }

        .stat-card .label {
            color: #718096;
            margin-top: 5px;
        }

        .warning-banner {
            background: #fef5e7;
            border-left: 5px solid #f6ad55;
            border-radius: 10px;
            padding: 20px;
            margin-bottom: 30px;
            color: #744210;
        }

        .classes {
            background: rgba(255, 255, 255, 0.95);
            backdrop-filter: blur(10px);
            border-radius: 15px;
            padding: 25px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .classes h2 {
            color: #4a5568;
            margin-bottom: 20px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            text-align: left;
            padding: 12px;
            border-bottom: 1px solid #e2e8f0;
        }

        th {
            color: #718096;
            text-transform: uppercase;
            font-size: 0.8rem;
            letter-spacing: 0.05em;
        }

        .badge {
            display: inline-block;
            padding: 4px 10px;
            border-radius: 9999px;
            font-size: 0.8rem;
            font-weight: 600;
        }

        .badge.productive {
            background: #c6f6d5;
            color: #22543d;
        }

        .badge.singleton {
            background: #fed7d7;
            color: #742a2a;
        }

        .footer {
            text-align: center;
            color: rgba(255, 255, 255, 0.8);
            margin-top: 30px;
            font-size: 0.9rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Run {{.RunID}} &mdash; {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
        </div>

        <div class="stats-grid">
            <div class="stat-card"><div class="value">{{.Result.SentenceCount}}</div><div class="label">Sentences</div></div>
            <div class="stat-card"><div class="value">{{.Result.Substrings}}</div><div class="label">Substrings</div></div>
            <div class="stat-card"><div class="value">{{.Result.DistinctContexts}}</div><div class="label">Contexts</div></div>
            <div class="stat-card"><div class="value">{{.Result.Edges}}</div><div class="label">Edges</div></div>
            <div class="stat-card"><div class="value">{{.Result.Classes}}</div><div class="label">Classes</div></div>
            <div class="stat-card"><div class="value">{{.Result.ProductiveClasses}}</div><div class="label">Productive</div></div>
        </div>

        {{if .Result.Degenerate}}
        <div class="warning-banner">
            <strong>Degenerate result:</strong> no contexts are shared by any two substrings.
            Every congruence class is a singleton and no productive rules were induced.
        </div>
        {{end}}

        <div class="classes">
            <h2>Congruence Classes</h2>
            <table>
                <thead>
                    <tr><th>Class</th><th>Members</th><th>Contexts</th><th>Status</th></tr>
                </thead>
                <tbody>
                    {{range .Fragments}}
                    <tr>
                        <td>{{.ClassID}}</td>
                        <td>{{range $i, $m := .Members}}{{if $i}}, {{end}}{{$m}}{{end}}</td>
                        <td>{{len .Contexts}}</td>
                        <td>
                            {{if .Productive}}<span class="badge productive">productive</span>
                            {{else}}<span class="badge singleton">insufficiently attested</span>{{end}}
                        </td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>

        <div class="footer">Generated by SLG Learner in {{.Result.Duration}}</div>
    </div>
</body>
</html>`
