package manual

import "html/template"

// pageData holds the data passed to the manual template.
type pageData struct {
	Name       string
	Language   string
	Slugs      []string
	Buttons    []button
	Styles     []template.CSS
	Navigation template.HTML
	Content    template.HTML
	Scripts    []template.JS
}

type button struct {
	Slug  string
	Title string
}

// highlightCSS is a dark highlight.js theme matching the manual colours.
const highlightCSS = `
.hljs { display: block; overflow-x: auto; padding: 0.5em; background: #282a36; }
.hljs, .hljs-subst { color: #f8f8f2; }
.hljs-built_in, .hljs-selector-tag, .hljs-section, .hljs-link { color: #8be9fd; }
.hljs-keyword { color: #ff79c6; }
.hljs-title, .hljs-attr, .hljs-meta-keyword { font-style: italic; color: #50fa7b; }
.hljs-string, .hljs-meta, .hljs-name, .hljs-type, .hljs-symbol, .hljs-bullet,
.hljs-addition, .hljs-variable, .hljs-template-tag, .hljs-template-variable { color: #f1fa8c; }
.hljs-comment, .hljs-quote, .hljs-deletion { color: #6272a4; }
.hljs-keyword, .hljs-selector-tag, .hljs-literal, .hljs-title, .hljs-section,
.hljs-doctag, .hljs-type, .hljs-name, .hljs-strong { font-weight: bold; }
.hljs-literal, .hljs-number { color: #bd93f9; }
.hljs-emphasis { font-style: italic; }
`

const manualCSS = `
:root {
  --text-color: white;
  --select-color: cyan;
  --background-main: black;
  --background-secondary: #333;
  --navigation-height: 70px;
  --navigation-border: 2px;
  --sidebar-width: 250px;
  --content-padding: 10px;
}
body {
  margin: 0;
  color: var(--text-color);
  background-color: var(--background-main);
  font-family: 'Roboto', sans-serif;
}
#navigation {
  position: sticky;
  top: 0;
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 0 10px;
  height: var(--navigation-height);
  background-color: var(--background-main);
  border-bottom: var(--navigation-border) solid var(--text-color);
}
#navigation > button {
  border: medium solid var(--text-color);
  border-radius: 15px;
  color: var(--text-color);
  background: none;
  padding: 10px;
  cursor: pointer;
}
#navigation > button:hover { color: var(--select-color); }
#navigation > button:active { background-color: var(--select-color); color: var(--text-color); }
#sidebar {
  position: fixed;
  top: calc(var(--navigation-height) + var(--navigation-border));
  left: 0;
  width: var(--sidebar-width);
  height: calc(100vh - var(--navigation-height) - var(--navigation-border));
  background-color: var(--background-secondary);
  overflow-y: auto;
}
#sidebar ul { list-style-type: none; padding-inline-start: 20px; }
a { color: var(--select-color); text-decoration: none; }
a:hover { text-decoration: underline; }
#content {
  margin-left: var(--sidebar-width);
  padding: var(--content-padding) 40px;
  height: calc(100vh - var(--navigation-height) - var(--navigation-border) - var(--content-padding) * 2);
  overflow-y: scroll;
}
h1, h2, h3, h4, h5, h6, p { margin-top: 0; margin-bottom: 10px; }
p { margin-bottom: 7px; }
blockquote {
  margin: 0;
  padding: 1em 40px;
  background-color: var(--background-secondary);
  border-left: 5px solid var(--text-color);
}
blockquote > p:last-child { margin-bottom: 0; }
code { font-size: large; }
`

// pageIDs are the element ids used by the page layout itself.
var pageIDs = []string{"navigation", "sidebar", "content"}

// pageTemplate lays out the manual. The control script keeps exactly one
// section visible: selecting a button hides every non-button element
// scoped to another section and shows the elements of the chosen one.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}}</title>
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&display=swap">
<script src="https://unpkg.com/@highlightjs/cdn-assets@11.9.0/highlight.min.js"></script>
<style>` + highlightCSS + `</style>
<style>` + manualCSS + `</style>
{{- range .Styles}}
<style>{{.}}</style>
{{- end}}
</head>
<body>
<nav id="navigation">
{{- range .Buttons}}
<button type="button" class="{{.Slug}}">{{.Title}}</button>
{{- end}}
</nav>
<aside id="sidebar">
<nav>
{{.Navigation}}</nav>
</aside>
<div id="content">
{{.Content}}<div style="height: 50px;"></div>
</div>
{{- range .Scripts}}
<script>{{.}}</script>
{{- end}}
<script>
window.addEventListener("load", function () {
  if (window.hljs) {
    hljs.highlightAll();
  }
  var sections = {{.Slugs}};
  function showSection(selected) {
    for (var i = 0; i < sections.length; i++) {
      var elements = document.getElementsByClassName(sections[i]);
      for (var j = 0; j < elements.length; j++) {
        if (elements[j].tagName === "BUTTON") {
          continue;
        }
        elements[j].style.display = sections[i] === selected ? "block" : "none";
      }
    }
  }
  sections.forEach(function (section) {
    var elements = document.getElementsByClassName(section);
    for (var j = 0; j < elements.length; j++) {
      if (elements[j].tagName !== "BUTTON") {
        continue;
      }
      elements[j].addEventListener("click", function () {
        showSection(section);
      });
    }
  });
  if (sections.length > 0) {
    showSection(sections[0]);
  }
});
</script>
</body>
</html>
`
