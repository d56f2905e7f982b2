package handler

import "html/template"

// unlockPage is the self-contained page served for share links. It embeds
// only the target user ID; documents are fetched by POSTing the PIN back to
// the same URL.
var unlockPage = template.Must(template.New("unlock").Parse(unlockPageHTML))

const unlockPageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Digital Setu - Secure Document Access</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <style>
    body { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; }
  </style>
</head>
<body class="p-6">
  <div class="max-w-md mx-auto bg-white rounded-xl shadow-2xl p-6 mt-12">
    <div class="text-center mb-6">
      <div class="w-12 h-12 bg-blue-100 rounded-full flex items-center justify-center mx-auto mb-4">
        <svg class="w-6 h-6 text-blue-600" fill="none" stroke="currentColor" viewBox="0 0 24 24">
          <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 15v2m-6 4h12a2 2 0 002-2v-6a2 2 0 00-2-2H6a2 2 0 00-2 2v6a2 2 0 002 2zm10-10V7a4 4 0 00-8 0v4h8z"></path>
        </svg>
      </div>
      <h1 class="text-2xl font-bold text-gray-800 mb-2">Secure Document Access</h1>
      <p class="text-gray-600">Enter your PIN to view documents</p>
    </div>

    <div id="pin-form">
      <input type="password" id="pin" placeholder="Enter 4-digit PIN" maxlength="6"
             class="w-full px-4 py-3 border border-gray-300 rounded-lg mb-4 text-center text-lg"
             inputmode="numeric">
      <button onclick="unlock()" id="unlock-btn"
              class="w-full bg-blue-600 text-white py-3 rounded-lg font-semibold hover:bg-blue-700 transition-colors">
        Unlock Documents
      </button>
    </div>

    <div id="documents" class="hidden">
      <div class="text-center mb-4">
        <div class="w-8 h-8 bg-green-100 rounded-full flex items-center justify-center mx-auto mb-2">
          <svg class="w-5 h-5 text-green-600" fill="none" stroke="currentColor" viewBox="0 0 24 24">
            <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M5 13l4 4L19 7"></path>
          </svg>
        </div>
        <h2 class="text-lg font-semibold text-gray-800">Documents Unlocked</h2>
      </div>
      <div id="doc-list"></div>
    </div>

    <div id="error" class="hidden text-red-600 text-center mt-4"></div>
  </div>

  <script>
    const uid = "{{.UID}}";

    document.getElementById('pin').addEventListener('input', function(e) {
      e.target.value = e.target.value.replace(/[^0-9]/g, '');
    });

    document.getElementById('pin').addEventListener('keypress', function(e) {
      if (e.key === 'Enter') unlock();
    });

    async function unlock() {
      const pin = document.getElementById('pin').value;
      const btn = document.getElementById('unlock-btn');
      const error = document.getElementById('error');

      if (!pin || pin.length < 4) {
        showError('Enter your 4-digit PIN');
        return;
      }

      btn.textContent = 'Unlocking...';
      btn.disabled = true;
      error.classList.add('hidden');

      try {
        const res = await fetch(window.location.href, {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify({ uid, pin })
        });

        const data = await res.json();

        if (!res.ok) {
          throw new Error(data.error || 'Invalid PIN');
        }

        showDocuments(data.documents || []);
      } catch (e) {
        showError(e.message || 'Failed to unlock documents');
        btn.textContent = 'Unlock Documents';
        btn.disabled = false;
      }
    }

    function showError(msg) {
      const error = document.getElementById('error');
      error.textContent = msg;
      error.classList.remove('hidden');
    }

    function showDocuments(docs) {
      document.getElementById('pin-form').classList.add('hidden');
      document.getElementById('documents').classList.remove('hidden');

      const list = document.getElementById('doc-list');
      if (docs.length === 0) {
        list.innerHTML = '<p class="text-gray-500 text-center">No documents found</p>';
        return;
      }

      list.innerHTML = docs.map(doc => ` + "`" + `
        <div class="border border-gray-200 rounded-lg p-3 mb-3">
          <div class="flex items-center justify-between">
            <div class="flex-1 min-w-0">
              <h3 class="font-medium text-gray-800 truncate">${doc.document_name}</h3>
              <p class="text-sm text-gray-500 capitalize">${doc.document_type}</p>
            </div>
            <div class="flex space-x-2 ml-3">
              <button onclick="window.open('${doc.signed_url}', '_blank')"
                      class="p-2 text-blue-600 hover:bg-blue-50 rounded">
                <svg class="w-4 h-4" fill="none" stroke="currentColor" viewBox="0 0 24 24">
                  <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 12a3 3 0 11-6 0 3 3 0 016 0z"></path>
                  <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z"></path>
                </svg>
              </button>
              <button onclick="downloadDoc('${doc.signed_url}', '${doc.document_name}')"
                      class="p-2 text-green-600 hover:bg-green-50 rounded">
                <svg class="w-4 h-4" fill="none" stroke="currentColor" viewBox="0 0 24 24">
                  <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 10v6m0 0l-3-3m3 3l3-3m2 8H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z"></path>
                </svg>
              </button>
            </div>
          </div>
        </div>
      ` + "`" + `).join('');
    }

    function downloadDoc(url, name) {
      const a = document.createElement('a');
      a.href = url;
      a.download = name;
      document.body.appendChild(a);
      a.click();
      document.body.removeChild(a);
    }
  </script>
</body>
</html>
`
