package viz

import (
	"bytes"
	"fmt"
	"html/template"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Layout string // "force", "circle", "grid" or "concentric"
	Title  string
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{
		Layout: "force",
		Title:  "Cocktail Similarity Graph",
	}
}

// ValidLayouts lists the supported layout algorithm names.
var ValidLayouts = []string{"force", "circle", "grid", "concentric"}

// GenerateHTML generates a self-contained HTML page for the graph. Cytoscape.js
// is loaded from a CDN.
func GenerateHTML(graph *GraphData, opts HTMLOptions) (string, error) {
	if graph == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}

	layout, err := layoutToCytoscape(opts.Layout)
	if err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = DefaultOptions().Title
	}

	if graph.IsEmpty() {
		var buf bytes.Buffer
		if err := compiledTemplate.ExecuteTemplate(&buf, "empty", templateData{Title: title}); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	graphJSON, err := graph.ToCytoscapeJSON()
	if err != nil {
		return "", err
	}

	data := templateData{
		Title:     title,
		GraphJSON: template.JS(graphJSON),
		Layout:    layout,
		NodeCount: len(graph.Nodes),
		EdgeCount: len(graph.Edges),
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// templateData holds data for the HTML template.
type templateData struct {
	Title     string
	GraphJSON template.JS
	Layout    string
	NodeCount int
	EdgeCount int
}

// layoutToCytoscape converts user-facing layout names to Cytoscape.js layout
// algorithm names.
func layoutToCytoscape(layout string) (string, error) {
	switch layout {
	case "", "force":
		return "cose", nil
	case "circle", "grid", "concentric":
		return layout, nil
	default:
		return "", fmt.Errorf("invalid layout %q: must be one of %v", layout, ValidLayouts)
	}
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      background: #f5f5f5;
    }
    #cy { width: 100%; height: 100vh; background: white; }
    #header {
      position: absolute; top: 8px; left: 12px; z-index: 10;
      font-size: 13px; color: #555;
    }
    #header input { margin-left: 8px; padding: 2px 6px; }
    #tooltip {
      position: absolute; display: none; z-index: 1000; pointer-events: none;
      background: white; border: 1px solid #ccc; border-radius: 4px;
      padding: 8px 12px; box-shadow: 0 2px 8px rgba(0,0,0,0.15);
      max-width: 320px; font-size: 13px;
    }
    #tooltip .label { font-weight: bold; margin-bottom: 4px; }
    #tooltip .detail { color: #555; margin: 2px 0; }
  </style>
</head>
<body>
  <div id="header">
    {{.Title}}: {{.NodeCount}} cocktails, {{.EdgeCount}} links
    <input id="search" type="text" placeholder="find cocktail">
  </div>
  <div id="cy"></div>
  <div id="tooltip"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};

      const cy = cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: [
          {
            selector: 'node',
            style: {
              'background-color': '#4A90D9',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '4px',
              'width': 'mapData(degree, 0, 20, 16, 48)',
              'height': 'mapData(degree, 0, 20, 16, 48)'
            }
          },
          {
            selector: 'node[degree = 0]',
            style: { 'background-color': '#BBBBBB' }
          },
          {
            selector: 'edge',
            style: {
              'line-color': '#95A5A6',
              'curve-style': 'bezier',
              'width': 'mapData(score, 7, 25, 1, 5)'
            }
          },
          {
            selector: '.path',
            style: {
              'background-color': '#E8923A',
              'line-color': '#E8923A',
              'z-index': 10
            }
          },
          { selector: 'node.highlighted', style: { 'border-width': 3, 'border-color': '#ff6b6b' } },
          { selector: '.dimmed', style: { 'opacity': 0.2 } }
        ],
        layout: {
          name: "{{.Layout}}",
          animate: false,
          nodeRepulsion: 8000,
          idealEdgeLength: function(edge) { return 40 + 400 * edge.data('weight'); }
        }
      });

      const tooltip = document.getElementById('tooltip');

      function escapeHtml(str) {
        if (!str) return '';
        return String(str).replace(/&/g, '&amp;')
                          .replace(/</g, '&lt;')
                          .replace(/>/g, '&gt;')
                          .replace(/"/g, '&quot;');
      }

      function showTooltip(evt, content) {
        tooltip.innerHTML = content;
        tooltip.style.display = 'block';
        const pos = evt.renderedPosition || evt.position;
        tooltip.style.left = (pos.x + 15) + 'px';
        tooltip.style.top = (pos.y + 15) + 'px';
      }

      cy.on('mouseover', 'node', function(evt) {
        const d = evt.target.data();
        let html = '<div class="label">' + escapeHtml(d.label) + '</div>';
        html += '<div class="detail">Glass: ' + escapeHtml(d.glass) + '</div>';
        html += '<div class="detail">Garnish: ' + escapeHtml(d.garnish) + '</div>';
        html += '<div class="detail">Techniques: ' + (d.techniques || []).map(escapeHtml).join(', ') + '</div>';
        html += '<div class="detail">Ingredients: ' + (d.ingredients || []).map(escapeHtml).join(', ') + '</div>';
        html += '<div class="detail">Links: ' + d.degree + '</div>';
        showTooltip(evt, html);
      });

      cy.on('mouseover', 'edge', function(evt) {
        const d = evt.target.data();
        showTooltip(evt, '<div class="label">' + escapeHtml(d.source) + ' ↔ ' + escapeHtml(d.target) +
          '</div><div class="detail">Score: ' + d.score + '</div>');
      });

      cy.on('mouseout', 'node, edge', function() {
        tooltip.style.display = 'none';
      });

      function focus(node) {
        cy.elements().removeClass('highlighted dimmed');
        const neighborhood = node.neighborhood().add(node);
        neighborhood.addClass('highlighted');
        cy.elements().not(neighborhood).addClass('dimmed');
      }

      cy.on('tap', 'node', function(evt) { focus(evt.target); });

      cy.on('tap', function(evt) {
        if (evt.target === cy) {
          cy.elements().removeClass('highlighted dimmed');
        }
      });

      document.getElementById('search').addEventListener('keydown', function(evt) {
        if (evt.key !== 'Enter') return;
        const query = evt.target.value.toLowerCase();
        const match = cy.nodes().filter(function(n) {
          return n.data('label').toLowerCase().indexOf(query) !== -1;
        });
        if (match.length > 0) {
          focus(match[0]);
          cy.animate({ center: { eles: match[0] }, zoom: 1.5 });
        }
      });
    })();
  </script>
</body>
</html>
{{define "empty"}}<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} - Empty</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex; justify-content: center; align-items: center;
      height: 100vh; margin: 0; background: #f5f5f5;
    }
    .empty-state { text-align: center; color: #666; }
    .empty-state h2 { margin-bottom: 0.5em; color: #333; }
    .empty-state code { background: #e0e0e0; padding: 2px 6px; border-radius: 3px; }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No graph data</h2>
    <p>Your library doesn't have any cocktails yet.</p>
    <p>Import a dataset using <code>mix import cocktails.csv</code></p>
  </div>
</body>
</html>{{end}}`
