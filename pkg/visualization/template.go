/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: template.go
Description: HTML template for the substitution graph page. Embeds the graph
payload and lays it out with a D3 force simulation, scaled to the vertex count
the same way the node spacing is hand-tuned for large graphs.
*/

package visualization

// graphPageTemplate renders the force-directed substitution graph
const graphPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Substitution Graph - Run {{.RunID}}</title>
    <script src="https://cdn.jsdelivr.net/npm/d3@7"></script>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            background: #f7fafc;
        }
        svg { width: 100vw; height: 100vh; }
        .link { stroke: #a0aec0; stroke-opacity: 0.6; }
        .node circle { stroke: #fff; stroke-width: 1.5px; }
        .node text { font-size: 11px; fill: #2d3748; pointer-events: none; }
    </style>
</head>
<body>
<svg></svg>
<script>
    const payload = {{.Payload}};
    const nodes = payload.graph.nodes.map(n => ({...n, class: payload.classes[n.id]}));
    const links = payload.graph.links.map(l => ({...l}));

    const width = window.innerWidth, height = window.innerHeight;
    const color = d3.scaleOrdinal(d3.schemeTableau10);

    // Larger graphs get more breathing room, smaller labels
    const scale = nodes.length > 0 ? 1 - 1 / Math.sqrt(nodes.length) : 0;
    const distance = 60 + 120 * scale;
    const radius = nodes.length > 250 ? 4 : 8;

    const simulation = d3.forceSimulation(nodes)
        .force("link", d3.forceLink(links).id(d => d.id).distance(distance))
        .force("charge", d3.forceManyBody().strength(-120))
        .force("center", d3.forceCenter(width / 2, height / 2));

    const svg = d3.select("svg");

    const link = svg.append("g").selectAll("line")
        .data(links).join("line")
        .attr("class", "link")
        .attr("stroke-width", d => Math.sqrt(d.value));
    link.append("title").text(d => d.label);

    const node = svg.append("g").selectAll("g")
        .data(nodes).join("g")
        .attr("class", "node")
        .call(d3.drag()
            .on("start", (event, d) => { if (!event.active) simulation.alphaTarget(0.3).restart(); d.fx = d.x; d.fy = d.y; })
            .on("drag", (event, d) => { d.fx = event.x; d.fy = event.y; })
            .on("end", (event, d) => { if (!event.active) simulation.alphaTarget(0); d.fx = null; d.fy = null; }));

    node.append("circle")
        .attr("r", radius)
        .attr("fill", d => color(d.class));
    node.append("title").text(d => d.id + " (" + d.class + ", " + d.context_count + " contexts)");
    node.append("text")
        .attr("dx", radius + 3)
        .attr("dy", 4)
        .text(d => d.label);

    simulation.on("tick", () => {
        link.attr("x1", d => d.source.x).attr("y1", d => d.source.y)
            .attr("x2", d => d.target.x).attr("y2", d => d.target.y);
        node.attr("transform", d => "translate(" + d.x + "," + d.y + ")");
    });
</script>
</body>
</html>`
