package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The admin dashboard shell. The content div pulls the initial card list
// exactly once on attach; every input fires a filter cycle per keystroke,
// with no debounce.
const adminPage = `<!DOCTYPE html>
<html>
<head>
  <title>Clinic Portal - Doctors</title>
  <script src="/static/htmx.min.js"></script>
</head>
<body>
  <div id="flash" class="flash"></div>
  <header class="dashboard-header">
    <input id="searchBar" name="name" type="text" placeholder="Search doctors"
      hx-get="/fragments/doctors/filter" hx-trigger="input"
      hx-target="#content" hx-include="#filterTime,#filterSpecialty"/>
    <select id="filterTime" name="time"
      hx-get="/fragments/doctors/filter" hx-trigger="change"
      hx-target="#content" hx-include="#searchBar,#filterSpecialty">
      <option value="">Any time</option>
      <option value="09:00">09:00</option>
      <option value="10:00">10:00</option>
      <option value="11:00">11:00</option>
      <option value="14:00">14:00</option>
      <option value="15:00">15:00</option>
    </select>
    <select id="filterSpecialty" name="specialty"
      hx-get="/fragments/doctors/filter" hx-trigger="change"
      hx-target="#content" hx-include="#searchBar,#filterTime">
      <option value="">Any specialty</option>
      <option value="Cardiology">Cardiology</option>
      <option value="Dermatology">Dermatology</option>
      <option value="Neurology">Neurology</option>
      <option value="Pediatrics">Pediatrics</option>
    </select>
    <button id="addDocBtn" data-modal="addDoctor">Add Doctor</button>
  </header>
  <div id="content" hx-get="/fragments/doctors" hx-trigger="load"></div>
  <div id="addDoctorModal" class="modal">
    <form hx-post="/fragments/doctors" hx-target="#content">
      <input id="doctorName" name="doctorName" type="text" placeholder="Name"/>
      <input id="doctorEmail" name="doctorEmail" type="email" placeholder="Email"/>
      <input id="doctorPhone" name="doctorPhone" type="text" placeholder="Phone"/>
      <input id="doctorPassword" name="doctorPassword" type="password" placeholder="Password"/>
      <input id="doctorSpecialty" name="doctorSpecialty" type="text" placeholder="Specialty"/>
      <fieldset>
        <label><input type="checkbox" name="availability" value="09:00"/>09:00</label>
        <label><input type="checkbox" name="availability" value="10:00"/>10:00</label>
        <label><input type="checkbox" name="availability" value="11:00"/>11:00</label>
        <label><input type="checkbox" name="availability" value="14:00"/>14:00</label>
        <label><input type="checkbox" name="availability" value="15:00"/>15:00</label>
      </fieldset>
      <button type="submit">Save</button>
    </form>
  </div>
</body>
</html>`

func (h *Handler) page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(adminPage))
}
