package api

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Crisis Center Finder</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 760px; margin: 40px auto; padding: 0 20px; line-height: 1.5; }
    code, pre { background: #f3f3f3; border-radius: 4px; }
    code { padding: 1px 4px; }
    pre { padding: 12px; overflow-x: auto; }
  </style>
</head>
<body>
  <h1>Crisis Center Finder</h1>
  <p>Finds the nearest Finnish crisis center for a city. Unknown cities are routed to the central Finland center.</p>

  <h2>GET /find-nearest</h2>
  <p>Query parameter <code>city</code> (required). Finnish and Swedish names are accepted, case and diacritics are ignored.</p>
  <pre>GET /find-nearest?city=Helsinki</pre>
  <pre>{
  "nearest_center": {
    "id": "helsinki",
    "name": "Helsingin kriisikeskus",
    "region": "Helsinki",
    "phone": "09 4135 0510",
    "languages": ["fi", "sv", "en"],
    "distance": { "straight_line_km": 0, "straight_line_known": true }
  },
  "emergency_contacts": { "national_crisis_line": "09 25250111", "emergency_number": "112" },
  "lookup": { "query": "Helsinki", "matched": "Helsinki", "match_type": "exact", "fallback": false },
  "coordinates_source": "gazetteer"
}</pre>
  <p>When a maps API key is configured the distance also carries <code>driving</code> and <code>transit</code> estimates.</p>

  <h2>Other endpoints</h2>
  <ul>
    <li><code>GET /centers</code> all centers as GeoJSON</li>
    <li><code>GET /health</code> service status</li>
    <li><code>GET /api/stats?since=YYYY-MM-DD</code> lookups per center</li>
  </ul>

  <h2>Emergency</h2>
  <p>Emergency number 112. National crisis line 09 25250111, open 24/7.</p>
</body>
</html>
`
