package server

// indexHTML is the single-page UI: a chat box for free-form questions and a
// guided form that posts the questionnaire to the evaluation endpoint.
const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Normal Forms Assistant</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-slate-100">
  <div class="max-w-4xl mx-auto py-10 px-4 space-y-6">
    <h1 class="text-2xl font-bold text-slate-800">Normal Forms Assistant</h1>

    <main class="bg-white rounded-xl shadow p-6 space-y-4 border border-slate-300">
      <h2 class="text-lg font-semibold text-slate-900">Ask about normal forms</h2>
      <p class="text-xs text-slate-600">
        Examples: "Does Pedido satisfy 2FN?" · "What normal form is Pedido in?" · "What does 3FN require?"
      </p>
      <form id="query-form" class="flex flex-col gap-3">
        <textarea id="query" rows="3" required
          class="w-full rounded-lg border border-slate-300 px-3 py-2 text-sm"
          placeholder="E.g.: Does the Pedido schema satisfy 2FN?"></textarea>
        <button type="submit"
          class="self-start rounded-lg bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">
          Ask
        </button>
      </form>
      <section id="output" class="mt-4 space-y-3 text-sm text-slate-800"></section>
    </main>

    <section class="bg-white rounded-xl shadow p-6 space-y-4 border border-slate-300">
      <h2 class="text-lg font-semibold text-slate-900">Guided schema evaluation</h2>
      <form id="guided-form" class="flex flex-col gap-3 text-sm">
        <label class="font-medium text-slate-700">Schema name
          <input id="g-schema" type="text" required
            class="mt-1 w-full rounded-lg border border-slate-300 px-3 py-2" placeholder="E.g.: Pedido" />
        </label>
        <label class="font-medium text-slate-700">Attributes (one per line, mark keys with (pk))
          <textarea id="g-attributes" rows="4" required
            class="mt-1 w-full rounded-lg border border-slate-300 px-3 py-2 font-mono"
            placeholder="IDPedido (pk)&#10;IDProducto (pk)&#10;Cantidad"></textarea>
        </label>
        <fieldset class="rounded-lg border border-slate-200 bg-slate-50 p-3">
          <p class="text-xs text-slate-700">With a composite key: does any non-key column depend on only part of it?</p>
          <label class="mr-4"><input type="radio" name="g-partials" value="no" checked /> No</label>
          <label><input type="radio" name="g-partials" value="yes" /> Yes</label>
          <input id="g-partials-count" type="number" min="0"
            class="mt-2 w-full rounded-lg border border-slate-200 px-2 py-1 text-xs"
            placeholder="How many partial dependencies? (optional)" />
        </fieldset>
        <fieldset class="rounded-lg border border-slate-200 bg-slate-50 p-3">
          <p class="text-xs text-slate-700">Can any non-key column be derived from another non-key column?</p>
          <label class="mr-4"><input type="radio" name="g-transitives" value="no" checked /> No</label>
          <label><input type="radio" name="g-transitives" value="yes" /> Yes</label>
          <input id="g-transitives-count" type="number" min="0"
            class="mt-2 w-full rounded-lg border border-slate-200 px-2 py-1 text-xs"
            placeholder="How many transitive dependencies? (optional)" />
        </fieldset>
        <button type="submit"
          class="self-start rounded-lg bg-emerald-600 px-4 py-2 font-medium text-white hover:bg-emerald-700">
          Create schema and evaluate
        </button>
      </form>
      <section id="guided-output" class="mt-3 space-y-3 text-sm text-slate-800"></section>
    </section>
  </div>

  <script>
    function card(inner) {
      return '<div class="border border-slate-200 rounded-lg p-3 bg-slate-50">' + inner + '</div>';
    }

    function radioValue(name) {
      const el = document.querySelector('input[name="' + name + '"]:checked');
      return el ? el.value : null;
    }

    document.getElementById('query-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const out = document.getElementById('output');
      const text = document.getElementById('query').value.trim();
      if (!text) return;
      out.innerHTML = card('Thinking...');
      try {
        const res = await fetch('/api/query', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify({ query: text })
        });
        const data = await res.json();
        out.innerHTML = card('<pre class="whitespace-pre-wrap text-xs">' + JSON.stringify(data, null, 2) + '</pre>');
      } catch (err) {
        out.innerHTML = card('<span class="text-red-600">Network or server error.</span>');
      }
    });

    document.getElementById('guided-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const out = document.getElementById('guided-output');
      const attributes = document.getElementById('g-attributes').value
        .split(/\r?\n/)
        .map(line => line.trim())
        .filter(line => line)
        .map(line => ({
          name: line.replace(/\(pk\)/ig, '').trim(),
          is_primary_key: /\(pk/i.test(line)
        }))
        .filter(a => a.name);

      const payload = {
        schema: document.getElementById('g-schema').value.trim(),
        attributes: attributes,
        has_partial_dependencies: radioValue('g-partials') === 'yes',
        partial_count: parseInt(document.getElementById('g-partials-count').value, 10) || 0,
        has_transitive_dependencies: radioValue('g-transitives') === 'yes',
        transitive_count: parseInt(document.getElementById('g-transitives-count').value, 10) || 0
      };

      out.innerHTML = card('Evaluating...');
      try {
        const res = await fetch('/api/guided/evaluate', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify(payload)
        });
        const data = await res.json();
        if (!data.ok) {
          out.innerHTML = card('<span class="text-red-600">Error: ' + (data.error || 'evaluation failed') + '</span>');
          return;
        }
        const s = data.summary;
        const rows = (data.state && data.state.forms || []).map(f =>
          '<p><span class="font-semibold">' + f.form + ':</span> ' + f.status +
          (f.evidence ? ' <code class="text-xs">' + JSON.stringify(f.evidence) + '</code>' : '') + '</p>'
        ).join('');
        out.innerHTML = card(
          '<p><span class="font-semibold">Schema:</span> ' + data.schema + '</p>' +
          '<p>1FN: ' + (s.satisfies_1fn ? 'CUMPLE' : 'NO CUMPLE') +
          ' · 2FN: ' + (s.satisfies_2fn ? 'CUMPLE' : 'NO CUMPLE') +
          ' · 3FN: ' + (s.satisfies_3fn ? 'CUMPLE' : 'NO CUMPLE') + '</p>' + rows
        );
      } catch (err) {
        out.innerHTML = card('<span class="text-red-600">Network or server error.</span>');
      }
    });
  </script>
</body>
</html>
`
