package site

// pageTemplate is the html/template for the cheatsheet page. Tabs are buttons
// driving role="tabpanel" sections; sections are native <details> elements.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.DocumentTitle}}</title>
  <style>{{.CSS}}</style>
</head>
<body>
  <main class="content">
    <div class="top-bar">
      <h1 class="page-title">{{.Title}}</h1>
      <div class="search">
        <input type="search" id="search-input" placeholder="Search sections..." autocomplete="off" aria-label="Search sections" aria-controls="search-results">
        <ul class="search-results" id="search-results" role="listbox" hidden></ul>
      </div>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <div class="tabs" role="tablist">
      {{- range .Tabs}}
      <button class="tab" role="tab" type="button" id="tab-{{.ID}}" data-tab="{{.ID}}" aria-controls="panel-{{.ID}}" aria-selected="{{if .Selected}}true{{else}}false{{end}}" tabindex="{{if .Selected}}0{{else}}-1{{end}}">{{.Label}}</button>
      {{- end}}
    </div>
    {{- range .Tabs}}
    <section class="tab-panel" role="tabpanel" id="panel-{{.ID}}" aria-labelledby="tab-{{.ID}}"{{if not .Selected}} hidden{{end}}>
      {{- if .Heading}}
      <h2 class="tab-heading">{{.Heading}}</h2>
      {{- end}}
      {{- range .Sections}}
      <details class="section" id="{{.Anchor}}"{{if .Open}} open{{end}}>
        <summary class="section-title">{{.Title}}</summary>
        <div class="section-body">
{{.Body}}        </div>
      </details>
      {{- end}}
    </section>
    {{- end}}
  </main>
  <script>{{.JS}}</script>
</body>
</html>
`

// cssContent is the stylesheet inlined into the page.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --radius: 6px;
  --font-mono: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
}

[data-theme="dark"] {
  --bg: #1a1b1e;
  --bg-secondary: #25262b;
  --text: #c1c2c5;
  --text-muted: #909296;
  --border: #373a40;
  --accent: #4dabf7;
  --accent-light: #1c3a5e;
  --code-bg: #2c2e33;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}

.content { padding: 24px 32px 64px; }

.top-bar { display: flex; align-items: center; justify-content: space-between; }
.page-title { font-size: 2rem; margin: 8px 0 16px; }

.search { position: relative; flex: 1; max-width: 420px; margin: 0 16px; }

#search-input {
  width: 100%;
  padding: 6px 10px;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--bg);
  color: var(--text);
  font-size: 0.95rem;
}
#search-input:focus { outline: 2px solid var(--accent); outline-offset: -1px; }

.search-results {
  position: absolute;
  left: 0;
  right: 0;
  z-index: 10;
  margin: 4px 0 0;
  padding: 4px 0;
  list-style: none;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.12);
}
.search-results a { display: block; padding: 6px 12px; color: var(--text); text-decoration: none; }
.search-results a:hover, .search-results a:focus { background: var(--accent-light); }
.search-results .search-tab { color: var(--text-muted); font-size: 0.85em; margin-left: 6px; }
.search-results .search-empty { padding: 6px 12px; color: var(--text-muted); }

.theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  color: var(--text);
  cursor: pointer;
  padding: 6px;
}

.tabs { display: flex; gap: 4px; border-bottom: 1px solid var(--border); margin-bottom: 16px; }

.tab {
  background: none;
  border: none;
  border-bottom: 2px solid transparent;
  color: var(--text-muted);
  cursor: pointer;
  font-size: 1rem;
  padding: 8px 16px;
}
.tab[aria-selected="true"] { color: var(--accent); border-bottom-color: var(--accent); }
.tab:focus-visible { outline: 2px solid var(--accent); outline-offset: -2px; }

.tab-heading { font-size: 1.5rem; margin: 8px 0 16px; }

.section {
  border: 1px solid var(--border);
  border-radius: var(--radius);
  margin-bottom: 8px;
  background: var(--bg-secondary);
}
.section-title { cursor: pointer; font-weight: 600; padding: 10px 14px; }
.section[open] .section-title { border-bottom: 1px solid var(--border); }
.section-body { padding: 8px 14px 14px; overflow-x: auto; }

table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid var(--border); padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: var(--accent-light); }

code {
  background: var(--code-bg);
  border-radius: 3px;
  font-family: var(--font-mono);
  font-size: 0.9em;
  padding: 1px 4px;
}
`

// jsContent switches tabs, persists the theme choice and searches
// search-index.json. Section collapse is handled natively by <details>.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  function getStoredTheme() {
    try { return localStorage.getItem("quickref-theme"); } catch(e) { return null; }
  }

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("quickref-theme", theme); } catch(e) {}
  }

  var stored = getStoredTheme();
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  var tabs = Array.prototype.slice.call(document.querySelectorAll(".tab"));

  function select(tab, keepFocus) {
    tabs.forEach(function(t) {
      var on = t === tab;
      t.setAttribute("aria-selected", on ? "true" : "false");
      t.setAttribute("tabindex", on ? "0" : "-1");
      var panel = document.getElementById(t.getAttribute("aria-controls"));
      if (panel) { panel.hidden = !on; }
    });
    if (!keepFocus) { tab.focus(); }
  }

  // reveal selects the tab holding a section, opens it and scrolls to it.
  function reveal(anchor) {
    var section = document.getElementById(anchor);
    if (!section || section.tagName !== "DETAILS") return false;
    var panel = section.closest(".tab-panel");
    var tab = panel && document.getElementById(panel.getAttribute("aria-labelledby"));
    if (tab) { select(tab, true); }
    section.open = true;
    section.scrollIntoView({ block: "start" });
    return true;
  }

  tabs.forEach(function(tab, i) {
    tab.addEventListener("click", function() { select(tab); });
    tab.addEventListener("keydown", function(e) {
      if (e.key === "ArrowRight") { select(tabs[(i + 1) % tabs.length]); e.preventDefault(); }
      if (e.key === "ArrowLeft") { select(tabs[(i - 1 + tabs.length) % tabs.length]); e.preventDefault(); }
    });
  });

  if (location.hash) { reveal(location.hash.slice(1)); }
  window.addEventListener("hashchange", function() { reveal(location.hash.slice(1)); });

  // ===== Section search (with search-index.json) =====
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;

  fetch("search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data; })
    .catch(function() { searchIndex = null; });

  function findSections(query) {
    if (!searchIndex) return [];
    return searchIndex.filter(function(entry) {
      return (entry.title + " " + entry.content).toLowerCase().indexOf(query) !== -1;
    });
  }

  function closeResults() {
    searchResults.hidden = true;
    searchResults.textContent = "";
  }

  if (searchInput && searchResults) {
    searchInput.addEventListener("input", function() {
      var query = this.value.toLowerCase().trim();
      searchResults.textContent = "";
      if (query === "") { closeResults(); return; }

      var matches = findSections(query);
      if (matches.length === 0) {
        var empty = document.createElement("li");
        empty.className = "search-empty";
        empty.textContent = searchIndex ? "No matching sections" : "Search index unavailable";
        searchResults.appendChild(empty);
      }
      matches.forEach(function(entry) {
        var li = document.createElement("li");
        var link = document.createElement("a");
        link.href = "#" + entry.anchor;
        link.textContent = entry.title;
        var tabLabel = document.getElementById("tab-" + entry.tab);
        if (tabLabel) {
          var where = document.createElement("span");
          where.className = "search-tab";
          where.textContent = tabLabel.textContent;
          link.appendChild(where);
        }
        link.addEventListener("click", function(e) {
          e.preventDefault();
          history.replaceState(null, "", "#" + entry.anchor);
          reveal(entry.anchor);
          closeResults();
        });
        li.appendChild(link);
        searchResults.appendChild(li);
      });
      searchResults.hidden = false;
    });

    searchInput.addEventListener("keydown", function(e) {
      if (e.key === "Escape") { this.value = ""; closeResults(); }
      if (e.key === "Enter") {
        var first = searchResults.querySelector("a");
        if (first) { first.click(); e.preventDefault(); }
      }
    });
  }
})();
`
