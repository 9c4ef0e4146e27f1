package finder

// layoutTemplate wraps every full page.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>` + cssContent + `</style>
</head>
<body>
  <div class="container">
    <header class="top-bar">
      <h1><a href="/">Cloud Kitchen Finder</a></h1>
      <form class="search" id="search-form" action="/" method="get">
        <input type="text" id="search-input" name="location" placeholder="Search..." value="{{.Location}}" autocomplete="off">
        <button type="submit" id="search-button">Search</button>
      </form>
    </header>
    <main>
      {{template "main" .}}
    </main>
  </div>
</body>
</html>{{end}}`

// indexTemplate is the search page. It is served in the pending state and
// the script below swaps the resolved results in.
const indexTemplate = `{{define "main"}}<section id="results" data-location="{{.Location}}">
{{template "results" .View}}
</section>
<script>` + scriptContent + `</script>{{end}}`

// resultsTemplate renders one View: loading indicator, error and grid.
const resultsTemplate = `{{define "results"}}{{if .Loading}}<p class="loading" id="loading">Loading...</p>
{{end}}{{if .Error}}<p class="error">{{.Error}}</p>
{{end}}<div class="grid" data-count="{{len .Kitchens}}">
{{range .Kitchens}}  <div class="kitchen-card">
    <h2>{{display .Name}}</h2>
    <p class="rating">Rating: {{display .Rating}}</p>
    <p>{{display .Description}}</p>
    {{with display .ID}}<a class="details" href="/kitchens/{{pathEscape .}}">View Details</a>{{end}}
  </div>
{{end}}</div>{{end}}`

// detailTemplate is the page behind "View Details".
const detailTemplate = `{{define "main"}}{{if .Error}}<p class="error">{{.Error}}</p>
{{end}}{{with .Kitchen}}<div class="kitchen-card kitchen-detail">
  <h2>{{display .Name}}</h2>
  <p class="rating">Rating: {{display .Rating}}</p>
  <p>{{display .Description}}</p>
</div>
{{end}}<p><a href="/?location={{.Location}}">Back to results</a></p>{{end}}`

const cssContent = `
:root {
  --bg: #ffffff;
  --text: #212529;
  --muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --ok: #2f9e44;
  --error: #e03131;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; color: var(--text); background: var(--bg); }
.container { max-width: 1100px; margin: 0 auto; padding: 0 1rem; }
.top-bar { display: flex; justify-content: space-between; align-items: center; padding: 1rem 0; }
.top-bar h1 { font-size: 1.5rem; margin: 0; }
.top-bar h1 a { color: inherit; text-decoration: none; }
.search { display: flex; align-items: center; }
.search input { border: 1px solid var(--border); padding: 0.5rem; }
.search button { margin-left: 0.5rem; background: var(--accent); color: #fff; border: 0; padding: 0.5rem 0.75rem; cursor: pointer; }
.search button:disabled { opacity: 0.6; cursor: wait; }
.loading { color: var(--muted); }
.error { color: var(--error); }
.grid { display: grid; grid-template-columns: 1fr; gap: 1rem; }
@media (min-width: 768px) { .grid { grid-template-columns: repeat(2, 1fr); } }
@media (min-width: 1024px) { .grid { grid-template-columns: repeat(3, 1fr); } }
.kitchen-card { border: 1px solid var(--border); border-radius: 4px; padding: 1rem; }
.kitchen-card h2 { font-size: 1.1rem; margin: 0 0 0.5rem; }
.details { display: inline-block; margin-top: 0.5rem; background: var(--ok); color: #fff; padding: 0.5rem; text-decoration: none; }
`

// scriptContent drives the results region: one fetch on load, then one per
// search while no other request is pending.
const scriptContent = `
(function() {
  var results = document.getElementById('results');
  var form = document.getElementById('search-form');
  var input = document.getElementById('search-input');
  var button = document.getElementById('search-button');
  var pending = false;

  function showLoading() {
    var grid = results.querySelector('.grid');
    var p = document.createElement('p');
    p.className = 'loading';
    p.id = 'loading';
    p.textContent = 'Loading...';
    results.innerHTML = '';
    results.appendChild(p);
    if (grid) {
      grid.innerHTML = '';
      results.appendChild(grid);
    }
  }

  function showError(message) {
    var p = document.createElement('p');
    p.className = 'error';
    p.textContent = message;
    results.innerHTML = '';
    results.appendChild(p);
  }

  function fetchKitchens(location) {
    if (pending) return;
    pending = true;
    button.disabled = true;
    showLoading();
    fetch('/kitchens?location=' + encodeURIComponent(location), { headers: { 'Accept': 'text/html' } })
      .then(function(resp) {
        if (!resp.ok) throw new Error('Network response was not ok');
        return resp.text();
      })
      .then(function(html) { results.innerHTML = html; })
      .catch(function(err) { showError(err.message); })
      .finally(function() {
        var loading = document.getElementById('loading');
        if (loading) loading.remove();
        pending = false;
        button.disabled = false;
      });
  }

  form.addEventListener('submit', function(e) {
    e.preventDefault();
    var location = input.value.trim() || results.dataset.location;
    if (window.history && window.history.replaceState) {
      window.history.replaceState(null, '', '/?location=' + encodeURIComponent(location));
    }
    fetchKitchens(location);
  });

  fetchKitchens(results.dataset.location);
})();
`
